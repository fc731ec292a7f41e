package model

import (
	"time"

	"github.com/osrstools/womgo/metric"
)

// Player is the summary record for a tracked player.
type Player struct {
	ID             int
	Username       string
	DisplayName    string
	Type           PlayerType
	Build          PlayerBuild
	Status         PlayerStatus
	Country        *Country
	Patron         bool
	Exp            int64
	Ehp            float64
	Ehb            float64
	Ttm            float64
	Tt200m         float64
	RegisteredAt   time.Time
	UpdatedAt      time.Time
	LastChangedAt  *time.Time
	LastImportedAt *time.Time
}

// PlayerDetail is a Player plus detail-only fields. The base record
// is embedded, so every Player field is reachable directly on the
// detail value.
type PlayerDetail struct {
	Player

	CombatLevel    int
	Archive        *PlayerArchive
	LatestSnapshot *Snapshot
}

// PlayerArchive describes a previous identity of an archived player.
type PlayerArchive struct {
	PreviousUsername string
	ArchiveUsername  string
	RestoredUsername *string
	CreatedAt        time.Time
	RestoredAt       *time.Time
}

// AssertPlayerType is returned when asserting (and possibly fixing) a
// player's account type.
type AssertPlayerType struct {
	Player  Player
	Changed bool
}

// SkillValue is the per-skill slice of a snapshot.
type SkillValue struct {
	Metric     metric.Skill
	Rank       int
	Level      int
	Experience int64
	Ehp        float64
}

// BossValue is the per-boss slice of a snapshot.
type BossValue struct {
	Metric metric.Boss
	Rank   int
	Kills  int
	Ehb    float64
}

// ActivityValue is the per-activity slice of a snapshot.
type ActivityValue struct {
	Metric metric.Activity
	Rank   int
	Score  int
}

// ComputedValue is the per-computed-metric slice of a snapshot.
type ComputedValue struct {
	Metric metric.Computed
	Rank   int
	Value  float64
}

// SnapshotData groups a snapshot's values by metric, keyed by the
// unified Metric identity each wire key resolved to.
type SnapshotData struct {
	Skills     map[metric.Metric]SkillValue
	Bosses     map[metric.Metric]BossValue
	Activities map[metric.Metric]ActivityValue
	Computed   map[metric.Metric]ComputedValue
}

// Snapshot is a point-in-time capture of a player's stats.
type Snapshot struct {
	ID         int
	PlayerID   int
	CreatedAt  time.Time
	ImportedAt *time.Time
	Data       SnapshotData
}

// Gains is the start/end/gained triple reported for one measure over
// a delta period.
type Gains struct {
	Gained float64
	Start  float64
	End    float64
}

// SkillGains reports the per-skill deltas over a period.
type SkillGains struct {
	Metric     metric.Skill
	Experience Gains
	Ehp        Gains
	Rank       Gains
	Level      Gains
}

// BossGains reports the per-boss deltas over a period.
type BossGains struct {
	Metric metric.Boss
	Ehb    Gains
	Rank   Gains
	Kills  Gains
}

// ActivityGains reports the per-activity deltas over a period.
type ActivityGains struct {
	Metric metric.Activity
	Rank   Gains
	Score  Gains
}

// ComputedGains reports the per-computed-metric deltas over a period.
type ComputedGains struct {
	Metric metric.Computed
	Rank   Gains
	Value  Gains
}

// PlayerGainsData groups per-metric gains by category.
type PlayerGainsData struct {
	Skills     map[metric.Metric]SkillGains
	Bosses     map[metric.Metric]BossGains
	Activities map[metric.Metric]ActivityGains
	Computed   map[metric.Metric]ComputedGains
}

// PlayerGains is the full gains report for one player over a window.
type PlayerGains struct {
	StartsAt time.Time
	EndsAt   time.Time
	Data     PlayerGainsData
}
