package metric

import (
	"sort"
	"strings"

	"github.com/osrstools/womgo/errs"
)

type entry struct {
	name     string
	display  string
	category Category
}

// wireNames is the versioned registry table: every wire name the API
// is known to emit, keyed by wire code. Adding a metric means adding
// a row here; the registry tests catch gaps at build time.
var wireNames = map[Metric]string{
	Overall:      "overall",
	Attack:       "attack",
	Defence:      "defence",
	Strength:     "strength",
	Hitpoints:    "hitpoints",
	Ranged:       "ranged",
	Prayer:       "prayer",
	Magic:        "magic",
	Cooking:      "cooking",
	Woodcutting:  "woodcutting",
	Fletching:    "fletching",
	Fishing:      "fishing",
	Firemaking:   "firemaking",
	Crafting:     "crafting",
	Smithing:     "smithing",
	Mining:       "mining",
	Herblore:     "herblore",
	Agility:      "agility",
	Thieving:     "thieving",
	Slayer:       "slayer",
	Farming:      "farming",
	Runecrafting: "runecrafting",
	Hunter:       "hunter",
	Construction: "construction",

	LeaguePoints:        "league_points",
	BountyHunterHunter:  "bounty_hunter_hunter",
	BountyHunterRogue:   "bounty_hunter_rogue",
	ClueScrollsAll:      "clue_scrolls_all",
	ClueScrollsBeginner: "clue_scrolls_beginner",
	ClueScrollsEasy:     "clue_scrolls_easy",
	ClueScrollsMedium:   "clue_scrolls_medium",
	ClueScrollsHard:     "clue_scrolls_hard",
	ClueScrollsElite:    "clue_scrolls_elite",
	ClueScrollsMaster:   "clue_scrolls_master",
	LastManStanding:     "last_man_standing",
	PvpArena:            "pvp_arena",
	SoulWarsZeal:        "soul_wars_zeal",
	GuardiansOfTheRift:  "guardians_of_the_rift",

	AbyssalSire:              "abyssal_sire",
	AlchemicalHydra:          "alchemical_hydra",
	Artio:                    "artio",
	BarrowsChests:            "barrows_chests",
	Bryophyta:                "bryophyta",
	Callisto:                 "callisto",
	Calvarion:                "calvarion",
	Cerberus:                 "cerberus",
	ChambersOfXeric:          "chambers_of_xeric",
	ChambersOfXericChallenge: "chambers_of_xeric_challenge_mode",
	ChaosElemental:           "chaos_elemental",
	ChaosFanatic:             "chaos_fanatic",
	CommanderZilyana:         "commander_zilyana",
	CorporealBeast:           "corporeal_beast",
	CrazyArchaeologist:       "crazy_archaeologist",
	DagannothPrime:           "dagannoth_prime",
	DagannothRex:             "dagannoth_rex",
	DagannothSupreme:         "dagannoth_supreme",
	DerangedArchaeologist:    "deranged_archaeologist",
	GeneralGraardor:          "general_graardor",
	GiantMole:                "giant_mole",
	GrotesqueGuardians:       "grotesque_guardians",
	Hespori:                  "hespori",
	KalphiteQueen:            "kalphite_queen",
	KingBlackDragon:          "king_black_dragon",
	Kraken:                   "kraken",
	Kreearra:                 "kreearra",
	KrilTsutsaroth:           "kril_tsutsaroth",
	Mimic:                    "mimic",
	Nex:                      "nex",
	Nightmare:                "nightmare",
	PhosanisNightmare:        "phosanis_nightmare",
	Obor:                     "obor",
	PhantomMuspah:            "phantom_muspah",
	Sarachnis:                "sarachnis",
	Scorpia:                  "scorpia",
	Skotizo:                  "skotizo",
	Spindel:                  "spindel",
	Tempoross:                "tempoross",
	TheGauntlet:              "the_gauntlet",
	TheCorruptedGauntlet:     "the_corrupted_gauntlet",
	TheatreOfBlood:           "theatre_of_blood",
	TheatreOfBloodHard:       "theatre_of_blood_hard_mode",
	ThermonuclearSmokeDevil:  "thermonuclear_smoke_devil",
	TombsOfAmascut:           "tombs_of_amascut",
	TombsOfAmascutExpert:     "tombs_of_amascut_expert",
	TzkalZuk:                 "tzkal_zuk",
	TztokJad:                 "tztok_jad",
	Venenatis:                "venenatis",
	Vetion:                   "vetion",
	Vorkath:                  "vorkath",
	Wintertodt:               "wintertodt",
	Zalcano:                  "zalcano",
	Zulrah:                   "zulrah",

	Ehp: "ehp",
	Ehb: "ehb",
}

// displayOverrides covers labels that plain title casing gets wrong.
var displayOverrides = map[Metric]string{
	ChambersOfXericChallenge: "Chambers of Xeric (CM)",
	Kreearra:                 "Kree'Arra",
	KrilTsutsaroth:           "K'ril Tsutsaroth",
	PhosanisNightmare:        "Phosani's Nightmare",
	TheatreOfBloodHard:       "Theatre of Blood (HM)",
	TombsOfAmascutExpert:     "Tombs of Amascut (Expert)",
	TzkalZuk:                 "TzKal-Zuk",
	TztokJad:                 "TzTok-Jad",
	Vetion:                   "Vet'ion",
	Calvarion:                "Calvar'ion",
	PvpArena:                 "PvP Arena",
	Ehp:                      "EHP",
	Ehb:                      "EHB",
}

// lowercase connectives stay lowercase inside a label.
var minorWords = map[string]bool{"of": true, "the": true}

var (
	byCode = map[Metric]entry{}
	byName = map[string]Metric{}

	// The four precomputed sets partition the metric space; each
	// Metric is a member of exactly one. Treat the exported slices as
	// read-only.
	SkillMetrics    []Metric
	BossMetrics     []Metric
	ActivityMetrics []Metric
	ComputedMetrics []Metric

	skillSet    = map[Metric]bool{}
	bossSet     = map[Metric]bool{}
	activitySet = map[Metric]bool{}
	computedSet = map[Metric]bool{}
)

func init() {
	for m, name := range wireNames {
		cat := categoryFor(m)
		byCode[m] = entry{name: name, display: displayFor(m, name), category: cat}
		byName[name] = m

		switch cat {
		case CategorySkill:
			SkillMetrics = append(SkillMetrics, m)
			skillSet[m] = true
		case CategoryBoss:
			BossMetrics = append(BossMetrics, m)
			bossSet[m] = true
		case CategoryActivity:
			ActivityMetrics = append(ActivityMetrics, m)
			activitySet[m] = true
		case CategoryComputed:
			ComputedMetrics = append(ComputedMetrics, m)
			computedSet[m] = true
		}
	}

	for _, set := range [][]Metric{SkillMetrics, BossMetrics, ActivityMetrics, ComputedMetrics} {
		sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	}
}

func categoryFor(m Metric) Category {
	switch {
	case m < 100:
		return CategorySkill
	case m < 200:
		return CategoryActivity
	case m < 300:
		return CategoryBoss
	default:
		return CategoryComputed
	}
}

func displayFor(m Metric, name string) string {
	if label, overridden := displayOverrides[m]; overridden {
		return label
	}

	words := strings.Split(name, "_")
	for i, w := range words {
		if i > 0 && minorWords[w] {
			continue
		}

		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

// All returns every registered metric, ordered by wire code.
func All() []Metric {
	all := make([]Metric, 0, len(byCode))
	for m := range byCode {
		all = append(all, m)
	}

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	return all
}

// FromWireCode resolves a numeric wire code against the registry. It
// panics with an *errs.UnknownMetricError when the code is unknown to
// the current registry version.
func FromWireCode(code int) Metric {
	if _, registered := byCode[Metric(code)]; !registered {
		panic(&errs.UnknownMetricError{Code: code})
	}

	return Metric(code)
}

// FromName resolves a snake_case wire name against the registry. Like
// FromWireCode it panics on an unregistered name.
func FromName(name string) Metric {
	m, registered := byName[name]
	if !registered {
		panic(&errs.UnknownMetricError{Name: name})
	}

	return m
}

// Lookup is the explicit non-fatal form of FromName, for callers that
// opt into leniency. The deserializer never uses it.
func Lookup(name string) (Metric, bool) {
	m, registered := byName[name]
	return m, registered
}
