package routes_test

import (
	"net/url"
	"testing"

	"github.com/osrstools/womgo/routes"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRouteCompile(t *testing.T) {
	Convey("Given a route with placeholders", t, func() {
		route := routes.Route{Method: "GET", URI: "/players/{}"}

		Convey("When compiling with a plain argument", func() {
			compiled := route.Compile("jonxslays")

			So(compiled.URI, ShouldEqual, "/players/jonxslays")
			So(compiled.Method(), ShouldEqual, "GET")
		})

		Convey("When compiling with an argument needing escaping", func() {
			compiled := route.Compile("lynx titan")

			So(compiled.URI, ShouldEqual, "/players/lynx%20titan")
		})

		Convey("When compiling with a numeric argument", func() {
			compiled := routes.PlayerDetailsByID.Compile(151063)

			So(compiled.URI, ShouldEqual, "/players/id/151063")
		})

		Convey("When the route has multiple placeholders", func() {
			multi := routes.Route{Method: "GET", URI: "/a/{}/b/{}"}
			compiled := multi.Compile("x", "y")

			So(compiled.URI, ShouldEqual, "/a/x/b/y")
		})
	})

	Convey("Given a compiled route", t, func() {
		compiled := routes.SearchPlayers.Compile()

		Convey("When attaching query params", func() {
			compiled.WithParams(url.Values{"username": {"jonx"}, "limit": {"5"}})

			So(compiled.Params.Get("username"), ShouldEqual, "jonx")
			So(compiled.Params.Get("limit"), ShouldEqual, "5")
		})

		Convey("When attaching params in two batches", func() {
			compiled.WithParams(url.Values{"username": {"jonx"}}).
				WithParams(url.Values{"offset": {"10"}})

			So(compiled.Params.Get("username"), ShouldEqual, "jonx")
			So(compiled.Params.Get("offset"), ShouldEqual, "10")
		})

		Convey("Then compiling does not mutate the route table", func() {
			So(routes.SearchPlayers.URI, ShouldEqual, "/players/search")
		})
	})
}
