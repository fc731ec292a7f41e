package serde

import (
	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
)

// NameChange decodes a single name change body.
func (d *Deserializer) NameChange(body []byte) (model.NameChange, error) {
	return decodeObject("NameChange", body, d.nameChange)
}

// NameChanges decodes a page of name changes.
func (d *Deserializer) NameChanges(body []byte) ([]model.NameChange, error) {
	return decodeList("NameChange list", body, d.nameChange)
}

// RecordLeaderboard decodes the global record leaderboard.
func (d *Deserializer) RecordLeaderboard(body []byte) ([]model.RecordLeaderboardEntry, error) {
	return decodeList("RecordLeaderboardEntry list", body, d.recordLeaderboardEntry)
}

// DeltaLeaderboard decodes a global gains leaderboard.
func (d *Deserializer) DeltaLeaderboard(body []byte) ([]model.DeltaLeaderboardEntry, error) {
	return decodeList("DeltaLeaderboardEntry list", body, d.deltaLeaderboardEntry)
}

// EfficiencyLeaderboard decodes the global efficiency leaderboard,
// which is a plain page of players ordered by the requested measure.
func (d *Deserializer) EfficiencyLeaderboard(body []byte) ([]model.Player, error) {
	return decodeList("efficiency leaderboard", body, d.player)
}

func (d *Deserializer) nameChange(n node) (model.NameChange, error) {
	var (
		nc  model.NameChange
		err error
	)

	if nc.ID, err = integer(n, "id"); err != nil {
		return nc, err
	}

	if nc.PlayerID, err = integer(n, "playerId"); err != nil {
		return nc, err
	}

	if nc.OldName, err = str(n, "oldName"); err != nil {
		return nc, err
	}

	if nc.NewName, err = str(n, "newName"); err != nil {
		return nc, err
	}

	if nc.Status, err = enum(n, "status", model.ParseNameChangeStatus); err != nil {
		return nc, err
	}

	if nc.ResolvedAt, err = timestampMaybe(n, "resolvedAt"); err != nil {
		return nc, err
	}

	if nc.UpdatedAt, err = timestamp(n, "updatedAt"); err != nil {
		return nc, err
	}

	nc.CreatedAt, err = timestamp(n, "createdAt")

	return nc, err
}

func (d *Deserializer) record(n node) (model.Record, error) {
	var (
		r   model.Record
		err error
	)

	if r.ID, err = integer(n, "id"); err != nil {
		return r, err
	}

	if r.PlayerID, err = integer(n, "playerId"); err != nil {
		return r, err
	}

	if r.Period, err = enum(n, "period", model.ParsePeriod); err != nil {
		return r, err
	}

	metricName, err := str(n, "metric")
	if err != nil {
		return r, err
	}

	r.Metric = metric.FromName(metricName)

	if r.Value, err = number(n, "value"); err != nil {
		return r, err
	}

	r.UpdatedAt, err = timestamp(n, "updatedAt")

	return r, err
}

func (d *Deserializer) recordLeaderboardEntry(n node) (model.RecordLeaderboardEntry, error) {
	var (
		entry model.RecordLeaderboardEntry
		err   error
	)

	if entry.Record, err = d.record(n); err != nil {
		return entry, err
	}

	playerNode, err := child(n, "player")
	if err != nil {
		return entry, err
	}

	entry.Player, err = d.player(playerNode)

	return entry, err
}

func (d *Deserializer) deltaLeaderboardEntry(n node) (model.DeltaLeaderboardEntry, error) {
	var (
		entry model.DeltaLeaderboardEntry
		err   error
	)

	if entry.PlayerID, err = integer(n, "playerId"); err != nil {
		return entry, err
	}

	if entry.Gained, err = number(n, "gained"); err != nil {
		return entry, err
	}

	if entry.StartDate, err = timestamp(n, "startDate"); err != nil {
		return entry, err
	}

	if entry.EndDate, err = timestamp(n, "endDate"); err != nil {
		return entry, err
	}

	playerNode, err := child(n, "player")
	if err != nil {
		return entry, err
	}

	entry.Player, err = d.player(playerNode)

	return entry, err
}

// Message decodes a message-only success body.
func (d *Deserializer) Message(status int, body []byte) (model.HTTPSuccess, error) {
	return decodeObject("HTTPSuccess", body, func(n node) (model.HTTPSuccess, error) {
		message, err := str(n, "message")
		if err != nil {
			return model.HTTPSuccess{}, err
		}

		return model.HTTPSuccess{Status: status, Message: message}, nil
	})
}
