package serde

import (
	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
)

// Player decodes a single player summary body.
func (d *Deserializer) Player(body []byte) (model.Player, error) {
	return decodeObject("Player", body, d.player)
}

// Players decodes a page of player summaries.
func (d *Deserializer) Players(body []byte) ([]model.Player, error) {
	return decodeList("Player list", body, d.player)
}

// PlayerDetail decodes a player detail body. The detail record is the
// base player widened with detail-only fields, decoded from the same
// node.
func (d *Deserializer) PlayerDetail(body []byte) (model.PlayerDetail, error) {
	return decodeObject("PlayerDetail", body, d.playerDetail)
}

// AssertPlayerType decodes the assert-type response.
func (d *Deserializer) AssertPlayerType(body []byte) (model.AssertPlayerType, error) {
	return decodeObject("AssertPlayerType", body, func(n node) (model.AssertPlayerType, error) {
		var out model.AssertPlayerType

		playerNode, err := child(n, "player")
		if err != nil {
			return out, err
		}

		if out.Player, err = d.player(playerNode); err != nil {
			return out, err
		}

		out.Changed, err = boolean(n, "changed")

		return out, err
	})
}

// Snapshot decodes a single snapshot body.
func (d *Deserializer) Snapshot(body []byte) (model.Snapshot, error) {
	return decodeObject("Snapshot", body, d.snapshot)
}

// Snapshots decodes a page of snapshots.
func (d *Deserializer) Snapshots(body []byte) ([]model.Snapshot, error) {
	return decodeList("Snapshot list", body, d.snapshot)
}

// PlayerGains decodes a player gains report.
func (d *Deserializer) PlayerGains(body []byte) (model.PlayerGains, error) {
	return decodeObject("PlayerGains", body, d.playerGains)
}

// PlayerMemberships decodes the group memberships of a player.
func (d *Deserializer) PlayerMemberships(body []byte) ([]model.PlayerMembership, error) {
	return decodeList("PlayerMembership list", body, d.playerMembership)
}

func (d *Deserializer) player(n node) (model.Player, error) {
	var (
		p   model.Player
		err error
	)

	if p.ID, err = integer(n, "id"); err != nil {
		return p, err
	}

	if p.Username, err = str(n, "username"); err != nil {
		return p, err
	}

	if p.DisplayName, err = str(n, "displayName"); err != nil {
		return p, err
	}

	if p.Type, err = enum(n, "type", model.ParsePlayerType); err != nil {
		return p, err
	}

	if p.Build, err = enum(n, "build", model.ParsePlayerBuild); err != nil {
		return p, err
	}

	if p.Status, err = enum(n, "status", model.ParsePlayerStatus); err != nil {
		return p, err
	}

	if p.Country, err = enumMaybe(n, "country", model.ParseCountry); err != nil {
		return p, err
	}

	if p.Patron, err = boolean(n, "patron"); err != nil {
		return p, err
	}

	if p.Exp, err = integer64(n, "exp"); err != nil {
		return p, err
	}

	if p.Ehp, err = number(n, "ehp"); err != nil {
		return p, err
	}

	if p.Ehb, err = number(n, "ehb"); err != nil {
		return p, err
	}

	if p.Ttm, err = number(n, "ttm"); err != nil {
		return p, err
	}

	if p.Tt200m, err = number(n, "tt200m"); err != nil {
		return p, err
	}

	if p.RegisteredAt, err = timestamp(n, "registeredAt"); err != nil {
		return p, err
	}

	if p.UpdatedAt, err = timestamp(n, "updatedAt"); err != nil {
		return p, err
	}

	if p.LastChangedAt, err = timestampMaybe(n, "lastChangedAt"); err != nil {
		return p, err
	}

	p.LastImportedAt, err = timestampMaybe(n, "lastImportedAt")

	return p, err
}

func (d *Deserializer) playerDetail(n node) (model.PlayerDetail, error) {
	var (
		detail model.PlayerDetail
		err    error
	)

	if detail.Player, err = d.player(n); err != nil {
		return detail, err
	}

	if detail.CombatLevel, err = integer(n, "combatLevel"); err != nil {
		return detail, err
	}

	archiveNode, err := childMaybe(n, "archive")
	if err != nil {
		return detail, err
	}

	if archiveNode != nil {
		archive, err := d.playerArchive(archiveNode)
		if err != nil {
			return detail, err
		}

		detail.Archive = &archive
	}

	snapshotNode, err := childMaybe(n, "latestSnapshot")
	if err != nil {
		return detail, err
	}

	if snapshotNode != nil {
		snapshot, err := d.snapshot(snapshotNode)
		if err != nil {
			return detail, err
		}

		detail.LatestSnapshot = &snapshot
	}

	return detail, nil
}

func (d *Deserializer) playerArchive(n node) (model.PlayerArchive, error) {
	var (
		a   model.PlayerArchive
		err error
	)

	if a.PreviousUsername, err = str(n, "previousUsername"); err != nil {
		return a, err
	}

	if a.ArchiveUsername, err = str(n, "archiveUsername"); err != nil {
		return a, err
	}

	if a.RestoredUsername, err = strMaybe(n, "restoredUsername"); err != nil {
		return a, err
	}

	if a.CreatedAt, err = timestamp(n, "createdAt"); err != nil {
		return a, err
	}

	a.RestoredAt, err = timestampMaybe(n, "restoredAt")

	return a, err
}

func (d *Deserializer) snapshot(n node) (model.Snapshot, error) {
	var (
		s   model.Snapshot
		err error
	)

	if s.ID, err = integer(n, "id"); err != nil {
		return s, err
	}

	if s.PlayerID, err = integer(n, "playerId"); err != nil {
		return s, err
	}

	if s.CreatedAt, err = timestamp(n, "createdAt"); err != nil {
		return s, err
	}

	if s.ImportedAt, err = timestampMaybe(n, "importedAt"); err != nil {
		return s, err
	}

	dataNode, err := child(n, "data")
	if err != nil {
		return s, err
	}

	s.Data, err = d.snapshotData(dataNode)

	return s, err
}

func (d *Deserializer) snapshotData(n node) (model.SnapshotData, error) {
	var (
		data model.SnapshotData
		err  error
	)

	data.Skills, err = keyedMap(n, "skills", d.skillValue)
	if err != nil {
		return data, err
	}

	data.Bosses, err = keyedMap(n, "bosses", d.bossValue)
	if err != nil {
		return data, err
	}

	data.Activities, err = keyedMap(n, "activities", d.activityValue)
	if err != nil {
		return data, err
	}

	data.Computed, err = keyedMap(n, "computed", d.computedValue)

	return data, err
}

func (d *Deserializer) skillValue(m metric.Metric, n node) (model.SkillValue, error) {
	var (
		v   model.SkillValue
		err error
	)

	v.Metric = m

	if v.Rank, err = integer(n, "rank"); err != nil {
		return v, err
	}

	if v.Level, err = integer(n, "level"); err != nil {
		return v, err
	}

	if v.Experience, err = integer64(n, "experience"); err != nil {
		return v, err
	}

	v.Ehp, err = number(n, "ehp")

	return v, err
}

func (d *Deserializer) bossValue(m metric.Metric, n node) (model.BossValue, error) {
	var (
		v   model.BossValue
		err error
	)

	v.Metric = m

	if v.Rank, err = integer(n, "rank"); err != nil {
		return v, err
	}

	if v.Kills, err = integer(n, "kills"); err != nil {
		return v, err
	}

	v.Ehb, err = number(n, "ehb")

	return v, err
}

func (d *Deserializer) activityValue(m metric.Metric, n node) (model.ActivityValue, error) {
	var (
		v   model.ActivityValue
		err error
	)

	v.Metric = m

	if v.Rank, err = integer(n, "rank"); err != nil {
		return v, err
	}

	v.Score, err = integer(n, "score")

	return v, err
}

func (d *Deserializer) computedValue(m metric.Metric, n node) (model.ComputedValue, error) {
	var (
		v   model.ComputedValue
		err error
	)

	v.Metric = m

	if v.Rank, err = integer(n, "rank"); err != nil {
		return v, err
	}

	v.Value, err = number(n, "value")

	return v, err
}

func (d *Deserializer) gains(n node, key string) (model.Gains, error) {
	sub, err := child(n, key)
	if err != nil {
		return model.Gains{}, err
	}

	var g model.Gains

	if g.Gained, err = number(sub, "gained"); err != nil {
		return g, err
	}

	if g.Start, err = number(sub, "start"); err != nil {
		return g, err
	}

	g.End, err = number(sub, "end")

	return g, err
}

func (d *Deserializer) playerGains(n node) (model.PlayerGains, error) {
	var (
		g   model.PlayerGains
		err error
	)

	if g.StartsAt, err = timestamp(n, "startsAt"); err != nil {
		return g, err
	}

	if g.EndsAt, err = timestamp(n, "endsAt"); err != nil {
		return g, err
	}

	dataNode, err := child(n, "data")
	if err != nil {
		return g, err
	}

	if g.Data.Skills, err = keyedMap(dataNode, "skills", d.skillGains); err != nil {
		return g, err
	}

	if g.Data.Bosses, err = keyedMap(dataNode, "bosses", d.bossGains); err != nil {
		return g, err
	}

	if g.Data.Activities, err = keyedMap(dataNode, "activities", d.activityGains); err != nil {
		return g, err
	}

	g.Data.Computed, err = keyedMap(dataNode, "computed", d.computedGains)

	return g, err
}

func (d *Deserializer) skillGains(m metric.Metric, n node) (model.SkillGains, error) {
	var (
		g   model.SkillGains
		err error
	)

	g.Metric = m

	if g.Experience, err = d.gains(n, "experience"); err != nil {
		return g, err
	}

	if g.Ehp, err = d.gains(n, "ehp"); err != nil {
		return g, err
	}

	if g.Rank, err = d.gains(n, "rank"); err != nil {
		return g, err
	}

	g.Level, err = d.gains(n, "level")

	return g, err
}

func (d *Deserializer) bossGains(m metric.Metric, n node) (model.BossGains, error) {
	var (
		g   model.BossGains
		err error
	)

	g.Metric = m

	if g.Ehb, err = d.gains(n, "ehb"); err != nil {
		return g, err
	}

	if g.Rank, err = d.gains(n, "rank"); err != nil {
		return g, err
	}

	g.Kills, err = d.gains(n, "kills")

	return g, err
}

func (d *Deserializer) activityGains(m metric.Metric, n node) (model.ActivityGains, error) {
	var (
		g   model.ActivityGains
		err error
	)

	g.Metric = m

	if g.Rank, err = d.gains(n, "rank"); err != nil {
		return g, err
	}

	g.Score, err = d.gains(n, "score")

	return g, err
}

func (d *Deserializer) computedGains(m metric.Metric, n node) (model.ComputedGains, error) {
	var (
		g   model.ComputedGains
		err error
	)

	g.Metric = m

	if g.Rank, err = d.gains(n, "rank"); err != nil {
		return g, err
	}

	g.Value, err = d.gains(n, "value")

	return g, err
}
