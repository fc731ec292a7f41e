package model

import (
	"time"

	"github.com/osrstools/womgo/metric"
)

// Record is a player's best gain for a metric over a period.
type Record struct {
	ID        int
	PlayerID  int
	Period    Period
	Metric    metric.Metric
	Value     float64
	UpdatedAt time.Time
}

// RecordLeaderboardEntry is a Record with the holding player
// attached, as returned by the global record leaderboards.
type RecordLeaderboardEntry struct {
	Record

	Player Player
}

// DeltaLeaderboardEntry is one row of the global gains leaderboard.
type DeltaLeaderboardEntry struct {
	PlayerID  int
	Gained    float64
	StartDate time.Time
	EndDate   time.Time
	Player    Player
}
