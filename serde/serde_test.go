package serde_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/osrstools/womgo/errs"
	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/serde"
	. "github.com/smartystreets/goconvey/convey"
)

// playerFixture returns a complete, valid player node. Tests mutate
// copies of it to exercise individual failure modes.
func playerFixture() map[string]any {
	return map[string]any{
		"id":             151063,
		"username":       "jonxslays",
		"displayName":    "Jonxslays",
		"type":           "regular",
		"build":          "main",
		"status":         "active",
		"country":        "US",
		"patron":         true,
		"exp":            330940032,
		"ehp":            1012.5,
		"ehb":            250.25,
		"ttm":            0,
		"tt200m":         14500,
		"registeredAt":   "2021-03-24T15:47:22.000Z",
		"updatedAt":      "2023-06-01T10:00:00.000Z",
		"lastChangedAt":  "2023-06-01T09:59:58.000Z",
		"lastImportedAt": nil,
	}
}

func snapshotFixture() map[string]any {
	return map[string]any{
		"id":         9000,
		"playerId":   151063,
		"createdAt":  "2023-06-01T10:00:00.000Z",
		"importedAt": nil,
		"data": map[string]any{
			"skills": map[string]any{
				"attack": map[string]any{
					"rank":       12000,
					"level":      99,
					"experience": 14000000,
					"ehp":        55.5,
				},
			},
			"bosses": map[string]any{
				"zulrah": map[string]any{
					"rank":  400,
					"kills": 2500,
					"ehb":   70.25,
				},
			},
			"activities": map[string]any{
				"last_man_standing": map[string]any{
					"rank":  100,
					"score": 1500,
				},
			},
			"computed": map[string]any{
				"ehp": map[string]any{
					"rank":  9001,
					"value": 1012.5,
				},
			},
		},
	}
}

func marshal(v any) []byte {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return body
}

func TestPlayerDecoding(t *testing.T) {
	d := serde.NewDeserializer()

	Convey("Given a complete player body", t, func() {
		player, err := d.Player(marshal(playerFixture()))

		Convey("Then every field lands in its typed slot", func() {
			So(err, ShouldBeNil)
			So(player.ID, ShouldEqual, 151063)
			So(player.Username, ShouldEqual, "jonxslays")
			So(player.DisplayName, ShouldEqual, "Jonxslays")
			So(player.Type, ShouldEqual, model.PlayerTypeRegular)
			So(player.Build, ShouldEqual, model.PlayerBuildMain)
			So(player.Status, ShouldEqual, model.PlayerStatusActive)
			So(player.Patron, ShouldBeTrue)
			So(player.Exp, ShouldEqual, int64(330940032))
			So(player.Ehp, ShouldEqual, 1012.5)
		})

		Convey("Then present optionals are non-nil and null ones are nil", func() {
			So(player.Country, ShouldNotBeNil)
			So(*player.Country, ShouldEqual, model.Country("US"))
			So(player.LastChangedAt, ShouldNotBeNil)
			So(player.LastImportedAt, ShouldBeNil)
		})

		Convey("Then whole wire numbers widen into fractional fields", func() {
			So(player.Ttm, ShouldEqual, 0.0)
			So(player.Tt200m, ShouldEqual, 14500.0)
		})
	})

	Convey("Given a body missing a required field", t, func() {
		n := playerFixture()
		delete(n, "username")

		_, err := d.Player(marshal(n))

		Convey("Then the decode fails with a DecodeError naming the shape", func() {
			So(err, ShouldNotBeNil)

			var decodeErr *errs.DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
			So(decodeErr.Target, ShouldEqual, "Player")
			So(decodeErr.Error(), ShouldContainSubstring, "username")
		})
	})

	Convey("Given a body with a mistyped field", t, func() {
		n := playerFixture()
		n["username"] = 123

		_, err := d.Player(marshal(n))

		Convey("Then the decode fails instead of coercing", func() {
			var decodeErr *errs.DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
		})
	})

	Convey("Given a body with an unknown enum variant", t, func() {
		n := playerFixture()
		n["status"] = "imaginary"

		_, err := d.Player(marshal(n))

		Convey("Then the failure carries the offending raw string", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "imaginary")
		})
	})

	Convey("Given a fractional value in an integer field", t, func() {
		n := playerFixture()
		n["exp"] = 10.5

		_, err := d.Player(marshal(n))

		Convey("Then the decode fails rather than truncating", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "exp")
		})
	})

	Convey("Given an invalid country code", t, func() {
		n := playerFixture()
		n["country"] = "XX"

		_, err := d.Player(marshal(n))

		So(err, ShouldNotBeNil)
	})
}

func TestPlayerDetailLayering(t *testing.T) {
	d := serde.NewDeserializer()

	Convey("Given a detail body that widens the base player", t, func() {
		n := playerFixture()
		n["combatLevel"] = 126
		n["latestSnapshot"] = snapshotFixture()

		detail, err := d.PlayerDetail(marshal(n))
		So(err, ShouldBeNil)

		Convey("Then the embedded base decodes identically to the summary form", func() {
			base, baseErr := d.Player(marshal(playerFixture()))
			So(baseErr, ShouldBeNil)
			So(detail.Player, ShouldResemble, base)
		})

		Convey("Then detail-only fields are populated", func() {
			So(detail.CombatLevel, ShouldEqual, 126)
			So(detail.Archive, ShouldBeNil)
			So(detail.LatestSnapshot, ShouldNotBeNil)
			So(detail.LatestSnapshot.PlayerID, ShouldEqual, 151063)
		})
	})

	Convey("Given a detail body with a null snapshot", t, func() {
		n := playerFixture()
		n["combatLevel"] = 3
		n["latestSnapshot"] = nil

		detail, err := d.PlayerDetail(marshal(n))

		So(err, ShouldBeNil)
		So(detail.LatestSnapshot, ShouldBeNil)
	})
}

func TestSnapshotDecoding(t *testing.T) {
	d := serde.NewDeserializer()

	Convey("Given a snapshot body", t, func() {
		snapshot, err := d.Snapshot(marshal(snapshotFixture()))
		So(err, ShouldBeNil)

		Convey("Then metric-keyed objects resolve to unified identities", func() {
			attack, present := snapshot.Data.Skills[metric.Attack]
			So(present, ShouldBeTrue)
			So(attack.Metric.IsSkill(), ShouldBeTrue)
			So(attack.Level, ShouldEqual, 99)
			So(attack.Experience, ShouldEqual, int64(14000000))

			zulrah, present := snapshot.Data.Bosses[metric.Zulrah]
			So(present, ShouldBeTrue)
			So(zulrah.Kills, ShouldEqual, 2500)

			lms, present := snapshot.Data.Activities[metric.LastManStanding]
			So(present, ShouldBeTrue)
			So(lms.Score, ShouldEqual, 1500)

			ehp, present := snapshot.Data.Computed[metric.Ehp]
			So(present, ShouldBeTrue)
			So(ehp.Value, ShouldEqual, 1012.5)
		})
	})

	Convey("Given a snapshot keyed by an unregistered metric name", t, func() {
		n := snapshotFixture()
		data := n["data"].(map[string]any)
		data["skills"].(map[string]any)["sailing"] = map[string]any{
			"rank": 1, "level": 1, "experience": 0, "ehp": 0,
		}

		Convey("Then decoding halts with an unknown metric panic", func() {
			defer func() {
				recovered := recover()
				So(recovered, ShouldNotBeNil)

				unknownErr, isUnknown := recovered.(*errs.UnknownMetricError)
				So(isUnknown, ShouldBeTrue)
				So(unknownErr.Name, ShouldEqual, "sailing")
			}()

			_, _ = d.Snapshot(marshal(n))
		})
	})

	Convey("Given a fractional experience value", t, func() {
		n := snapshotFixture()
		data := n["data"].(map[string]any)
		data["skills"].(map[string]any)["attack"].(map[string]any)["experience"] = 10.5

		_, err := d.Snapshot(marshal(n))

		Convey("Then the decode fails as an ordinary error", func() {
			var decodeErr *errs.DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
			So(decodeErr.Target, ShouldEqual, "Snapshot")
		})
	})
}

func TestListDecoding(t *testing.T) {
	d := serde.NewDeserializer()

	Convey("Given a page of players", t, func() {
		players, err := d.Players(marshal([]any{playerFixture(), playerFixture()}))

		So(err, ShouldBeNil)
		So(players, ShouldHaveLength, 2)
		So(players[0].Username, ShouldEqual, "jonxslays")
	})

	Convey("Given an empty page", t, func() {
		players, err := d.Players([]byte(`[]`))

		So(err, ShouldBeNil)
		So(players, ShouldBeEmpty)
	})

	Convey("Given a page with one broken element", t, func() {
		broken := playerFixture()
		delete(broken, "id")

		_, err := d.Players(marshal([]any{playerFixture(), broken}))

		Convey("Then the whole page fails, naming the element", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "element 1")
		})
	})
}

func TestMessageDecoding(t *testing.T) {
	d := serde.NewDeserializer()

	Convey("Given a message-only success body", t, func() {
		success, err := d.Message(200, []byte(`{"message":"Successfully deleted group."}`))

		So(err, ShouldBeNil)
		So(success.Status, ShouldEqual, 200)
		So(success.Message, ShouldEqual, "Successfully deleted group.")
	})

	Convey("Given a body without a message", t, func() {
		_, err := d.Message(200, []byte(`{}`))

		var decodeErr *errs.DecodeError
		So(errors.As(err, &decodeErr), ShouldBeTrue)
	})
}
