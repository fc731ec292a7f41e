package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/osrstools/womgo/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "https://api.wiseoldman.net/v2")
				convey.So(cfg.APIKey, convey.ShouldEqual, "")
				convey.So(cfg.TimeoutSeconds, convey.ShouldEqual, 30)
				convey.So(cfg.Timeout(), convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("WOMGO_BASE_URL", "http://localhost:5000/v2")
			_ = os.Setenv("WOMGO_API_KEY", "secret")
			_ = os.Setenv("WOMGO_TIMEOUT_SECONDS", "10")
			_ = os.Setenv("WOMGO_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "http://localhost:5000/v2")
				convey.So(cfg.APIKey, convey.ShouldEqual, "secret")
				convey.So(cfg.TimeoutSeconds, convey.ShouldEqual, 10)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
base_url: "http://localhost:5000/v2"
user_agent: "@tester"
timeout_seconds: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("WOMGO_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "http://localhost:5000/v2")
				convey.So(cfg.UserAgent, convey.ShouldEqual, "@tester")
				convey.So(cfg.TimeoutSeconds, convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
base_url: "http://localhost:5000/v2"
timeout_seconds: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("WOMGO_CONFIG", tmpFile)
			_ = os.Setenv("WOMGO_TIMEOUT_SECONDS", "5") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "http://localhost:5000/v2") // From file
				convey.So(cfg.TimeoutSeconds, convey.ShouldEqual, 5)                   // Overridden by env
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("WOMGO_CONFIG", "/nonexistent/womgo.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the timeout is invalid", func() {
			_ = os.Setenv("WOMGO_TIMEOUT_SECONDS", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation should reject it", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "timeout_seconds")
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"WOMGO_CONFIG",
		"WOMGO_BASE_URL",
		"WOMGO_API_KEY",
		"WOMGO_USER_AGENT",
		"WOMGO_TIMEOUT_SECONDS",
		"WOMGO_LOG_LEVEL",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "womgo-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
