package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/osrstools/womgo/errs"
	"github.com/osrstools/womgo/transport"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given an unstarted client", t, func() {
		client := transport.NewClient()

		Convey("When sending before Start", func() {
			_, err := client.Send(ctx, &transport.Request{Method: "GET", Path: "/players/search"})

			Convey("Then it fails fast instead of hanging", func() {
				So(err, ShouldEqual, errs.ErrNotStarted)
			})
		})

		Convey("When starting twice", func() {
			So(client.Start(ctx), ShouldBeNil)
			So(client.Start(ctx), ShouldBeNil)
		})
	})

	Convey("Given a closed client", t, func() {
		client := transport.NewClient()
		So(client.Start(ctx), ShouldBeNil)
		So(client.Close(ctx), ShouldBeNil)

		Convey("When sending after Close", func() {
			_, err := client.Send(ctx, &transport.Request{Method: "GET", Path: "/players/search"})

			So(err, ShouldEqual, errs.ErrClosed)
		})

		Convey("When starting after Close", func() {
			So(client.Start(ctx), ShouldEqual, errs.ErrClosed)
		})

		Convey("When closing twice", func() {
			So(client.Close(ctx), ShouldBeNil)
		})
	})
}

func TestClientSend(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started client pointed at a local server", t, func() {
		var captured *http.Request

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r.Clone(r.Context())
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		}))
		defer server.Close()

		client := transport.NewClient(
			transport.WithBaseURL(server.URL),
			transport.WithAPIKey("test-key"),
			transport.WithUserAgent("@tester"),
		)
		So(client.Start(ctx), ShouldBeNil)
		defer func() { _ = client.Close(ctx) }()

		Convey("When sending a request with query params", func() {
			resp, err := client.Send(ctx, &transport.Request{
				Method: "GET",
				Path:   "/players/search",
				Query:  url.Values{"username": {"jonx"}},
			})

			Convey("Then the response comes back intact", func() {
				So(err, ShouldBeNil)
				So(resp.Status, ShouldEqual, http.StatusOK)
				So(string(resp.Body), ShouldEqual, `{"message":"ok"}`)
			})

			Convey("Then identification headers are attached", func() {
				So(captured, ShouldNotBeNil)
				So(captured.Header.Get("x-api-key"), ShouldEqual, "test-key")
				So(captured.Header.Get("x-user-agent"), ShouldEqual, "@tester")
				So(captured.Header.Get("x-request-id"), ShouldNotBeEmpty)
				So(captured.URL.Query().Get("username"), ShouldEqual, "jonx")
			})
		})

		Convey("When sending a request with a body", func() {
			_, err := client.Send(ctx, &transport.Request{
				Method: "POST",
				Path:   "/names",
				Body:   []byte(`{"oldName":"a","newName":"b"}`),
			})

			So(err, ShouldBeNil)
			So(captured.Header.Get("Content-Type"), ShouldEqual, "application/json")
		})

		Convey("When the api key is unset", func() {
			client.UnsetAPIKey()

			_, err := client.Send(ctx, &transport.Request{Method: "GET", Path: "/groups"})

			So(err, ShouldBeNil)
			So(captured.Header.Get("x-api-key"), ShouldBeEmpty)
		})
	})

	Convey("Given a failure status from the server", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Player not found."}`))
		}))
		defer server.Close()

		client := transport.NewClient(transport.WithBaseURL(server.URL))
		So(client.Start(ctx), ShouldBeNil)
		defer func() { _ = client.Close(ctx) }()

		Convey("Then Send still returns the response, not an error", func() {
			resp, err := client.Send(ctx, &transport.Request{Method: "GET", Path: "/players/nobody"})

			So(err, ShouldBeNil)
			So(resp.Status, ShouldEqual, http.StatusNotFound)
			So(string(resp.Body), ShouldContainSubstring, "not found")
		})
	})
}
