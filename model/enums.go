// Package model contains the typed domain records decoded from API
// responses, plus the enumerated string fields they carry.
//
// Enumerated fields are validated by exact, case-sensitive match
// against the known variant set. Parse helpers return ok=false for an
// unknown raw string so the deserializer can report the offending
// value instead of guessing; that is how callers find out the remote
// service introduced a variant ahead of a library update.
package model

// PlayerType is the account type of a player.
type PlayerType string

const (
	PlayerTypeUnknown  PlayerType = "unknown"
	PlayerTypeRegular  PlayerType = "regular"
	PlayerTypeIronman  PlayerType = "ironman"
	PlayerTypeHardcore PlayerType = "hardcore"
	PlayerTypeUltimate PlayerType = "ultimate"
)

var playerTypes = map[PlayerType]bool{
	PlayerTypeUnknown:  true,
	PlayerTypeRegular:  true,
	PlayerTypeIronman:  true,
	PlayerTypeHardcore: true,
	PlayerTypeUltimate: true,
}

// ParsePlayerType validates a raw wire value.
func ParsePlayerType(raw string) (PlayerType, bool) {
	t := PlayerType(raw)
	return t, playerTypes[t]
}

// PlayerBuild is the account build classification.
type PlayerBuild string

const (
	PlayerBuildMain    PlayerBuild = "main"
	PlayerBuildF2p     PlayerBuild = "f2p"
	PlayerBuildLvl3    PlayerBuild = "lvl3"
	PlayerBuildZerker  PlayerBuild = "zerker"
	PlayerBuildDef1    PlayerBuild = "def1"
	PlayerBuildHp10    PlayerBuild = "hp10"
	PlayerBuildF2pLvl3 PlayerBuild = "f2p_lvl3"
)

var playerBuilds = map[PlayerBuild]bool{
	PlayerBuildMain:    true,
	PlayerBuildF2p:     true,
	PlayerBuildLvl3:    true,
	PlayerBuildZerker:  true,
	PlayerBuildDef1:    true,
	PlayerBuildHp10:    true,
	PlayerBuildF2pLvl3: true,
}

// ParsePlayerBuild validates a raw wire value.
func ParsePlayerBuild(raw string) (PlayerBuild, bool) {
	b := PlayerBuild(raw)
	return b, playerBuilds[b]
}

// PlayerStatus is the tracking status of a player.
type PlayerStatus string

const (
	PlayerStatusActive   PlayerStatus = "active"
	PlayerStatusUnranked PlayerStatus = "unranked"
	PlayerStatusFlagged  PlayerStatus = "flagged"
	PlayerStatusArchived PlayerStatus = "archived"
	PlayerStatusBanned   PlayerStatus = "banned"
)

var playerStatuses = map[PlayerStatus]bool{
	PlayerStatusActive:   true,
	PlayerStatusUnranked: true,
	PlayerStatusFlagged:  true,
	PlayerStatusArchived: true,
	PlayerStatusBanned:   true,
}

// ParsePlayerStatus validates a raw wire value.
func ParsePlayerStatus(raw string) (PlayerStatus, bool) {
	s := PlayerStatus(raw)
	return s, playerStatuses[s]
}

// Period is a span of time understood by the API.
type Period string

const (
	PeriodFiveMins Period = "five_min"
	PeriodDay      Period = "day"
	PeriodWeek     Period = "week"
	PeriodMonth    Period = "month"
	PeriodYear     Period = "year"
)

var periods = map[Period]bool{
	PeriodFiveMins: true,
	PeriodDay:      true,
	PeriodWeek:     true,
	PeriodMonth:    true,
	PeriodYear:     true,
}

// ParsePeriod validates a raw wire value.
func ParsePeriod(raw string) (Period, bool) {
	p := Period(raw)
	return p, periods[p]
}

// CompetitionType distinguishes classic and team competitions.
type CompetitionType string

const (
	CompetitionTypeClassic CompetitionType = "classic"
	CompetitionTypeTeam    CompetitionType = "team"
)

var competitionTypes = map[CompetitionType]bool{
	CompetitionTypeClassic: true,
	CompetitionTypeTeam:    true,
}

// ParseCompetitionType validates a raw wire value.
func ParseCompetitionType(raw string) (CompetitionType, bool) {
	t := CompetitionType(raw)
	return t, competitionTypes[t]
}

// CompetitionStatus is the lifecycle state of a competition.
type CompetitionStatus string

const (
	CompetitionStatusUpcoming CompetitionStatus = "upcoming"
	CompetitionStatusOngoing  CompetitionStatus = "ongoing"
	CompetitionStatusFinished CompetitionStatus = "finished"
)

var competitionStatuses = map[CompetitionStatus]bool{
	CompetitionStatusUpcoming: true,
	CompetitionStatusOngoing:  true,
	CompetitionStatusFinished: true,
}

// ParseCompetitionStatus validates a raw wire value.
func ParseCompetitionStatus(raw string) (CompetitionStatus, bool) {
	s := CompetitionStatus(raw)
	return s, competitionStatuses[s]
}

// NameChangeStatus is the review state of a name change request.
type NameChangeStatus string

const (
	NameChangeStatusPending  NameChangeStatus = "pending"
	NameChangeStatusApproved NameChangeStatus = "approved"
	NameChangeStatusDenied   NameChangeStatus = "denied"
)

var nameChangeStatuses = map[NameChangeStatus]bool{
	NameChangeStatusPending:  true,
	NameChangeStatusApproved: true,
	NameChangeStatusDenied:   true,
}

// ParseNameChangeStatus validates a raw wire value.
func ParseNameChangeStatus(raw string) (NameChangeStatus, bool) {
	s := NameChangeStatus(raw)
	return s, nameChangeStatuses[s]
}
