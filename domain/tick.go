package domain

import "time"

// DomainResult is the outcome of applying a profile to one scaling domain.
type DomainResult struct {
	Domain        ScalingDomain
	Skipped       bool
	SkipReason    string
	MinFreq       uint64 // value written to scaling_min_freq
	MaxFreq       uint64 // value written to scaling_max_freq
	WriteFailures int
}

// ApplyReport collects the per-domain results of one profile application.
type ApplyReport struct {
	Profile Profile
	Domains []DomainResult
}

// Applied counts domains whose bounds were written (successfully or not).
func (r ApplyReport) Applied() int {
	n := 0
	for _, d := range r.Domains {
		if !d.Skipped {
			n++
		}
	}
	return n
}

// TickResult is what one control-loop iteration produced. Snapshot is the rolling state the
// next iteration starts from.
type TickResult struct {
	At          time.Time
	Snapshot    CPUSnapshot
	Utilization float64
	Profile     Profile
	Applied     bool // false when the zero-delta guard skipped application
	Report      ApplyReport
}

// DomainState is a live, read-only view of one scaling domain.
type DomainState struct {
	Domain       ScalingDomain
	Table        FrequencyTable
	FallbackMax  uint64
	AbsoluteMin  uint64
	AbsoluteMax  uint64
	HighLoadMin  uint64
	LowLoadMax   uint64
	ScalingMin   uint64
	ScalingMax   uint64
	CurrentFreq  uint64
	Governor     string
	AffectedCPUs string
}
