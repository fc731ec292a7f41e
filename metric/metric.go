// Package metric defines the unified taxonomy of trackable
// quantities. One enumeration covers every skill, boss, activity and
// computed measure, replacing the four category-scoped enumerations
// that preceded it; the numeric value of a Metric is its wire code
// and is unique across the whole space, not just within a category.
//
// The registry is fixed at process start and read-only afterwards, so
// no synchronization is needed. Looking up an unregistered code or
// name is fatal.
package metric

// Category partitions the metric space. Every Metric belongs to
// exactly one category.
type Category int

const (
	CategorySkill Category = iota
	CategoryBoss
	CategoryActivity
	CategoryComputed
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategorySkill:
		return "skill"
	case CategoryBoss:
		return "boss"
	case CategoryActivity:
		return "activity"
	case CategoryComputed:
		return "computed"
	}

	return "unknown"
}

// Metric is a single trackable quantity. Its integer value is the
// stable wire code.
type Metric int

// Aliases for the superseded category-scoped enumerations. Code
// written against the old shape keeps working: a Skill compares equal
// to the unified Metric it became.
type (
	Skill    = Metric
	Boss     = Metric
	Activity = Metric
	Computed = Metric
)

// Wire codes are assigned in category blocks so a growing category
// never renumbers its neighbors.
const (
	Overall Metric = iota
	Attack
	Defence
	Strength
	Hitpoints
	Ranged
	Prayer
	Magic
	Cooking
	Woodcutting
	Fletching
	Fishing
	Firemaking
	Crafting
	Smithing
	Mining
	Herblore
	Agility
	Thieving
	Slayer
	Farming
	Runecrafting
	Hunter
	Construction
)

const (
	LeaguePoints Metric = iota + 100
	BountyHunterHunter
	BountyHunterRogue
	ClueScrollsAll
	ClueScrollsBeginner
	ClueScrollsEasy
	ClueScrollsMedium
	ClueScrollsHard
	ClueScrollsElite
	ClueScrollsMaster
	LastManStanding
	PvpArena
	SoulWarsZeal
	GuardiansOfTheRift
)

const (
	AbyssalSire Metric = iota + 200
	AlchemicalHydra
	Artio
	BarrowsChests
	Bryophyta
	Callisto
	Calvarion
	Cerberus
	ChambersOfXeric
	ChambersOfXericChallenge
	ChaosElemental
	ChaosFanatic
	CommanderZilyana
	CorporealBeast
	CrazyArchaeologist
	DagannothPrime
	DagannothRex
	DagannothSupreme
	DerangedArchaeologist
	GeneralGraardor
	GiantMole
	GrotesqueGuardians
	Hespori
	KalphiteQueen
	KingBlackDragon
	Kraken
	Kreearra
	KrilTsutsaroth
	Mimic
	Nex
	Nightmare
	PhosanisNightmare
	Obor
	PhantomMuspah
	Sarachnis
	Scorpia
	Skotizo
	Spindel
	Tempoross
	TheGauntlet
	TheCorruptedGauntlet
	TheatreOfBlood
	TheatreOfBloodHard
	ThermonuclearSmokeDevil
	TombsOfAmascut
	TombsOfAmascutExpert
	TzkalZuk
	TztokJad
	Venenatis
	Vetion
	Vorkath
	Wintertodt
	Zalcano
	Zulrah
)

const (
	Ehp Metric = iota + 300
	Ehb
)

// WireCode returns the stable numeric identifier transmitted over the
// network.
func (m Metric) WireCode() int { return int(m) }

// String returns the snake_case wire name, e.g. "last_man_standing".
func (m Metric) String() string {
	e, registered := byCode[m]
	if !registered {
		return "unregistered"
	}

	return e.name
}

// Display returns the human readable label, e.g. "Last Man Standing".
func (m Metric) Display() string {
	e, registered := byCode[m]
	if !registered {
		return "Unregistered"
	}

	return e.display
}

// Category returns the category tag for this metric in O(1).
func (m Metric) Category() Category {
	return byCode[m].category
}

// IsSkill reports membership in the precomputed skill set.
func (m Metric) IsSkill() bool { return skillSet[m] }

// IsBoss reports membership in the precomputed boss set.
func (m Metric) IsBoss() bool { return bossSet[m] }

// IsActivity reports membership in the precomputed activity set.
func (m Metric) IsActivity() bool { return activitySet[m] }

// IsComputed reports membership in the precomputed computed set.
func (m Metric) IsComputed() bool { return computedSet[m] }
