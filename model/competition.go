package model

import (
	"time"

	"github.com/osrstools/womgo/metric"
)

// Competition is the summary record for a competition.
type Competition struct {
	ID               int
	Title            string
	Metric           metric.Metric
	Type             CompetitionType
	StartsAt         time.Time
	EndsAt           time.Time
	GroupID          *int
	Score            int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ParticipantCount int
	Group            *Group
}

// Participation ties a player to a competition.
type Participation struct {
	PlayerID      int
	CompetitionID int
	TeamName      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CompetitionParticipation is a Participation with the participating
// player attached.
type CompetitionParticipation struct {
	Participation

	Player Player
}

// CompetitionProgress is a participant's progress over a competition
// window.
type CompetitionProgress struct {
	Start  float64
	End    float64
	Gained float64
}

// CompetitionParticipationDetail is a participation with its progress.
type CompetitionParticipationDetail struct {
	CompetitionParticipation

	Progress CompetitionProgress
}

// CompetitionDetail is a Competition plus the detailed standings of
// every participant.
type CompetitionDetail struct {
	Competition

	Participations []CompetitionParticipationDetail
}
