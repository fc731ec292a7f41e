package metrics_test

import (
	"testing"
	"time"

	"github.com/osrstools/womgo/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager with its own registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))

		Convey("When recording requests", func() {
			manager.RecordRequest("GET", "/players/search", 200, 120*time.Millisecond)
			manager.RecordRequest("GET", "/players/search", 200, 80*time.Millisecond)
			manager.RecordRequest("GET", "/players/search", 404, 30*time.Millisecond)

			Convey("Then counters split by status code", func() {
				ok := testutil.ToFloat64(manager.RequestsTotal().WithLabelValues("GET", "/players/search", "200"))
				notFound := testutil.ToFloat64(manager.RequestsTotal().WithLabelValues("GET", "/players/search", "404"))

				So(ok, ShouldEqual, 2)
				So(notFound, ShouldEqual, 1)
			})
		})

		Convey("When recording failures", func() {
			manager.RecordTransportFailure("GET", "/groups")
			manager.RecordDecodeFailure("Player")
			manager.RecordDecodeFailure("Player")

			So(testutil.ToFloat64(manager.TransportFailures().WithLabelValues("GET", "/groups")), ShouldEqual, 1)
			So(testutil.ToFloat64(manager.DecodeFailures().WithLabelValues("Player")), ShouldEqual, 2)
		})
	})

	Convey("Given a nil manager", t, func() {
		var manager *metrics.Manager

		Convey("Then recording is a harmless no-op", func() {
			So(func() {
				manager.RecordRequest("GET", "/players/search", 200, time.Millisecond)
				manager.RecordTransportFailure("GET", "/players/search")
				manager.RecordDecodeFailure("Player")
			}, ShouldNotPanic)
		})
	})

	Convey("Given a disabled manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := metrics.NewManager(
			metrics.WithPrometheusRegistry(registry),
			metrics.WithMetricsEnabled(false),
		)

		manager.RecordRequest("GET", "/players/search", 200, time.Millisecond)

		So(testutil.ToFloat64(manager.RequestsTotal().WithLabelValues("GET", "/players/search", "200")), ShouldEqual, 0)
	})
}
