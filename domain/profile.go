package domain

type Profile int

const (
	LowLoad Profile = iota
	HighLoad
)

func (p Profile) String() string {
	switch p {
	case HighLoad:
		return "high"
	case LowLoad:
		return "low"
	}
	return "unknown"
}

// ParseProfile accepts the names printed by Profile.String plus a few common aliases.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "high", "high-load", "highload", "HighLoad":
		return HighLoad, nil
	case "low", "low-load", "lowload", "LowLoad":
		return LowLoad, nil
	}
	return LowLoad, ErrUnknownProfile
}

// ClassifyLoad selects HighLoad only when utilization is strictly above threshold.
func ClassifyLoad(utilization, threshold float64) Profile {
	if utilization > threshold {
		return HighLoad
	}
	return LowLoad
}
