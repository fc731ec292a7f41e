package serde_test

import (
	"testing"

	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
	"github.com/osrstools/womgo/serde"
	. "github.com/smartystreets/goconvey/convey"
)

func groupFixture() map[string]any {
	return map[string]any{
		"id":           139,
		"name":         "The Cool Kids",
		"clanChat":     "coolkids",
		"description":  "An open clan.",
		"homeworld":    302,
		"verified":     true,
		"patron":       false,
		"profileImage": nil,
		"bannerImage":  nil,
		"score":        450,
		"createdAt":    "2020-11-10T12:00:00.000Z",
		"updatedAt":    "2023-06-01T10:00:00.000Z",
		"memberCount":  24,
	}
}

func membershipFixture() map[string]any {
	return map[string]any{
		"playerId":  151063,
		"groupId":   139,
		"role":      "member",
		"createdAt": "2021-01-01T00:00:00.000Z",
		"updatedAt": "2021-01-01T00:00:00.000Z",
	}
}

func competitionFixture() map[string]any {
	return map[string]any{
		"id":               5000,
		"title":            "Skill of the Week",
		"metric":           "agility",
		"type":             "classic",
		"startsAt":         "2023-06-05T00:00:00.000Z",
		"endsAt":           "2023-06-12T00:00:00.000Z",
		"groupId":          139,
		"score":            120,
		"createdAt":        "2023-06-01T10:00:00.000Z",
		"updatedAt":        "2023-06-01T10:00:00.000Z",
		"participantCount": 18,
	}
}

func TestGroupDecoding(t *testing.T) {
	d := serde.NewDeserializer()

	Convey("Given a group summary body", t, func() {
		group, err := d.Group(marshal(groupFixture()))

		So(err, ShouldBeNil)
		So(group.ID, ShouldEqual, 139)
		So(group.Name, ShouldEqual, "The Cool Kids")
		So(group.Homeworld, ShouldNotBeNil)
		So(*group.Homeworld, ShouldEqual, 302)
		So(group.ProfileImage, ShouldBeNil)
	})

	Convey("Given a group detail body with memberships", t, func() {
		membership := membershipFixture()
		membership["player"] = playerFixture()

		n := groupFixture()
		n["memberships"] = []any{membership}
		n["socialLinks"] = map[string]any{
			"website": "https://example.org",
			"discord": nil,
			"twitter": nil,
			"youtube": nil,
			"twitch":  nil,
		}

		detail, err := d.GroupDetail(marshal(n))

		Convey("Then the base group and the widened fields both decode", func() {
			So(err, ShouldBeNil)
			So(detail.Group.ID, ShouldEqual, 139)
			So(detail.Memberships, ShouldHaveLength, 1)
			So(detail.Memberships[0].Player.Username, ShouldEqual, "jonxslays")
			So(detail.SocialLinks.Website, ShouldNotBeNil)
			So(detail.SocialLinks.Discord, ShouldBeNil)
		})

		Convey("Then the membership role is validated", func() {
			role := detail.Memberships[0].Role
			So(role, ShouldNotBeNil)
			So(*role, ShouldEqual, model.GroupRoleMember)
		})
	})

	Convey("Given a membership with an unrecognized role", t, func() {
		membership := membershipFixture()
		membership["role"] = "supreme_overlord"
		membership["player"] = playerFixture()

		n := groupFixture()
		n["memberships"] = []any{membership}

		_, err := d.GroupDetail(marshal(n))

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "supreme_overlord")
	})
}

func TestCompetitionDecoding(t *testing.T) {
	d := serde.NewDeserializer()

	Convey("Given a competition summary body", t, func() {
		competition, err := d.Competition(marshal(competitionFixture()))

		So(err, ShouldBeNil)
		So(competition.Title, ShouldEqual, "Skill of the Week")
		So(competition.Metric, ShouldEqual, metric.Agility)
		So(competition.Type, ShouldEqual, model.CompetitionTypeClassic)
		So(competition.GroupID, ShouldNotBeNil)
		So(competition.Group, ShouldBeNil)
	})

	Convey("Given a competition detail body with standings", t, func() {
		n := competitionFixture()
		n["group"] = groupFixture()
		n["participations"] = []any{
			map[string]any{
				"playerId":      151063,
				"competitionId": 5000,
				"teamName":      nil,
				"createdAt":     "2023-06-05T00:00:00.000Z",
				"updatedAt":     "2023-06-06T00:00:00.000Z",
				"player":        playerFixture(),
				"progress": map[string]any{
					"start":  1000000,
					"end":    1250000,
					"gained": 250000,
				},
			},
		}

		detail, err := d.CompetitionDetail(marshal(n))

		So(err, ShouldBeNil)
		So(detail.Competition.Group, ShouldNotBeNil)
		So(detail.Participations, ShouldHaveLength, 1)
		So(detail.Participations[0].Progress.Gained, ShouldEqual, 250000.0)
		So(detail.Participations[0].Player.ID, ShouldEqual, 151063)
	})
}

func TestNameChangeAndLeaderboardDecoding(t *testing.T) {
	d := serde.NewDeserializer()

	Convey("Given a name change body", t, func() {
		nameChange, err := d.NameChange(marshal(map[string]any{
			"id":         777,
			"playerId":   151063,
			"oldName":    "jonxslays",
			"newName":    "jonxslays2",
			"status":     "pending",
			"resolvedAt": nil,
			"updatedAt":  "2023-06-01T10:00:00.000Z",
			"createdAt":  "2023-06-01T10:00:00.000Z",
		}))

		So(err, ShouldBeNil)
		So(nameChange.Status, ShouldEqual, model.NameChangeStatusPending)
		So(nameChange.ResolvedAt, ShouldBeNil)
	})

	Convey("Given a record leaderboard body", t, func() {
		entries, err := d.RecordLeaderboard(marshal([]any{
			map[string]any{
				"id":        42,
				"playerId":  151063,
				"period":    "week",
				"metric":    "zulrah",
				"value":     350,
				"updatedAt": "2023-06-01T10:00:00.000Z",
				"player":    playerFixture(),
			},
		}))

		So(err, ShouldBeNil)
		So(entries, ShouldHaveLength, 1)
		So(entries[0].Metric, ShouldEqual, metric.Zulrah)
		So(entries[0].Period, ShouldEqual, model.PeriodWeek)
		So(entries[0].Player.Username, ShouldEqual, "jonxslays")
	})

	Convey("Given a delta leaderboard body", t, func() {
		entries, err := d.DeltaLeaderboard(marshal([]any{
			map[string]any{
				"playerId":  151063,
				"gained":    1250000,
				"startDate": "2023-05-25T10:00:00.000Z",
				"endDate":   "2023-06-01T10:00:00.000Z",
				"player":    playerFixture(),
			},
		}))

		So(err, ShouldBeNil)
		So(entries, ShouldHaveLength, 1)
		So(entries[0].Gained, ShouldEqual, 1250000.0)
	})
}
