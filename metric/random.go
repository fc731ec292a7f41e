package metric

import "math/rand/v2"

// Random returns a uniformly chosen metric from the full registry.
// Useful for sampling and test fixtures.
func Random() Metric {
	all := All()
	return all[rand.IntN(len(all))]
}

// RandomIn returns a uniformly chosen metric from one category,
// drawing only from that category's precomputed set.
func RandomIn(c Category) Metric {
	var set []Metric

	switch c {
	case CategorySkill:
		set = SkillMetrics
	case CategoryBoss:
		set = BossMetrics
	case CategoryActivity:
		set = ActivityMetrics
	case CategoryComputed:
		set = ComputedMetrics
	}

	return set[rand.IntN(len(set))]
}
