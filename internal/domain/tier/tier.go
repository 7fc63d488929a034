package tier

// Tier is the owner subscription level controlling submission and template caps.
type Tier string

const (
	Free    Tier = "free"
	Premium Tier = "premium"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case Free, Premium:
		return true
	default:
		return false
	}
}

func (t Tier) IsPremium() bool {
	return t == Premium
}

// Resolve is the single canonical tier-resolution function. The persisted
// tier value has historically been read from several near-duplicate fields
// with inconsistent fallbacks; every call site must go through here.
// Anything that is not exactly "premium" degrades to free; ambiguous input
// must never grant unlimited usage.
func Resolve(s string) Tier {
	if Tier(s) == Premium {
		return Premium
	}
	return Free
}
