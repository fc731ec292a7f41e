package serde

import (
	"github.com/osrstools/womgo/metric"
	"github.com/osrstools/womgo/model"
)

// Competition decodes a single competition summary body.
func (d *Deserializer) Competition(body []byte) (model.Competition, error) {
	return decodeObject("Competition", body, d.competition)
}

// Competitions decodes a page of competition summaries.
func (d *Deserializer) Competitions(body []byte) ([]model.Competition, error) {
	return decodeList("Competition list", body, d.competition)
}

// CompetitionDetail decodes a competition detail body: the base
// competition widened with participant standings.
func (d *Deserializer) CompetitionDetail(body []byte) (model.CompetitionDetail, error) {
	return decodeObject("CompetitionDetail", body, d.competitionDetail)
}

func (d *Deserializer) competition(n node) (model.Competition, error) {
	var (
		c   model.Competition
		err error
	)

	if c.ID, err = integer(n, "id"); err != nil {
		return c, err
	}

	if c.Title, err = str(n, "title"); err != nil {
		return c, err
	}

	metricName, err := str(n, "metric")
	if err != nil {
		return c, err
	}

	c.Metric = metric.FromName(metricName)

	if c.Type, err = enum(n, "type", model.ParseCompetitionType); err != nil {
		return c, err
	}

	if c.StartsAt, err = timestamp(n, "startsAt"); err != nil {
		return c, err
	}

	if c.EndsAt, err = timestamp(n, "endsAt"); err != nil {
		return c, err
	}

	if c.GroupID, err = integerMaybe(n, "groupId"); err != nil {
		return c, err
	}

	if c.Score, err = integer(n, "score"); err != nil {
		return c, err
	}

	if c.CreatedAt, err = timestamp(n, "createdAt"); err != nil {
		return c, err
	}

	if c.UpdatedAt, err = timestamp(n, "updatedAt"); err != nil {
		return c, err
	}

	if c.ParticipantCount, err = integer(n, "participantCount"); err != nil {
		return c, err
	}

	groupNode, err := childMaybe(n, "group")
	if err != nil {
		return c, err
	}

	if groupNode != nil {
		group, err := d.group(groupNode)
		if err != nil {
			return c, err
		}

		c.Group = &group
	}

	return c, nil
}

func (d *Deserializer) competitionDetail(n node) (model.CompetitionDetail, error) {
	var (
		detail model.CompetitionDetail
		err    error
	)

	if detail.Competition, err = d.competition(n); err != nil {
		return detail, err
	}

	participationNodes, err := children(n, "participations")
	if err != nil {
		return detail, err
	}

	detail.Participations = make([]model.CompetitionParticipationDetail, 0, len(participationNodes))
	for _, participationNode := range participationNodes {
		participation, err := d.participationDetail(participationNode)
		if err != nil {
			return detail, err
		}

		detail.Participations = append(detail.Participations, participation)
	}

	return detail, nil
}

func (d *Deserializer) participation(n node) (model.Participation, error) {
	var (
		p   model.Participation
		err error
	)

	if p.PlayerID, err = integer(n, "playerId"); err != nil {
		return p, err
	}

	if p.CompetitionID, err = integer(n, "competitionId"); err != nil {
		return p, err
	}

	if p.TeamName, err = strMaybe(n, "teamName"); err != nil {
		return p, err
	}

	if p.CreatedAt, err = timestamp(n, "createdAt"); err != nil {
		return p, err
	}

	p.UpdatedAt, err = timestamp(n, "updatedAt")

	return p, err
}

func (d *Deserializer) participationDetail(n node) (model.CompetitionParticipationDetail, error) {
	var (
		detail model.CompetitionParticipationDetail
		err    error
	)

	if detail.Participation, err = d.participation(n); err != nil {
		return detail, err
	}

	playerNode, err := child(n, "player")
	if err != nil {
		return detail, err
	}

	if detail.Player, err = d.player(playerNode); err != nil {
		return detail, err
	}

	progressNode, err := child(n, "progress")
	if err != nil {
		return detail, err
	}

	if detail.Progress.Start, err = number(progressNode, "start"); err != nil {
		return detail, err
	}

	if detail.Progress.End, err = number(progressNode, "end"); err != nil {
		return detail, err
	}

	detail.Progress.Gained, err = number(progressNode, "gained")

	return detail, err
}
