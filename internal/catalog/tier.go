package catalog

// TierEntry maps an inclusive PAI score range to a predicted outcome tier.
// Entries are declared highest range first; together they partition [0,100].
type TierEntry struct {
	Grade        string
	Name         string
	Low          int // inclusive
	High         int // inclusive
	Universities []string
}

// Contains reports whether the entry's range includes the given score.
func (t TierEntry) Contains(score int) bool {
	return score >= t.Low && score <= t.High
}

// ResolveTier returns the tier whose range contains the PAI score.
// With a valid table exactly one entry matches. If none does (a malformed
// table), the lowest tier is returned with ok=false so the caller can log
// a data-integrity warning without crashing.
func ResolveTier(pai int) (TierEntry, bool) {
	for _, t := range reg.tiers {
		if t.Contains(pai) {
			return t, true
		}
	}
	return reg.tiers[len(reg.tiers)-1], false
}

// Tiers returns all tier entries in declaration order (highest first).
func Tiers() []TierEntry {
	out := make([]TierEntry, len(reg.tiers))
	copy(out, reg.tiers)
	return out
}
