package domain

import "sort"

// Unresolved is returned in place of a frequency when the hardware data needed to derive it is
// missing. It must never be written to a control file.
const Unresolved uint64 = 0

// ScalingDomain is one independently controllable cpufreq policy.
type ScalingDomain struct {
	ID   string // e.g. policy0
	Path string // control directory
}

type resolveKind int

const (
	absoluteMin resolveKind = iota
	absoluteMax
	percentile
)

// ResolveMode selects which entry of a frequency table a resolve returns.
type ResolveMode struct {
	kind resolveKind
	rank float64
}

var (
	AbsoluteMin = ResolveMode{kind: absoluteMin}
	AbsoluteMax = ResolveMode{kind: absoluteMax}
)

// Percentile selects the entry at floor(len*rank), rank in (0,1].
func Percentile(rank float64) ResolveMode {
	return ResolveMode{kind: percentile, rank: rank}
}

func (m ResolveMode) IsAbsoluteMax() bool { return m.kind == absoluteMax }

func (m ResolveMode) IsAbsoluteMin() bool { return m.kind == absoluteMin }

func (m ResolveMode) Rank() float64 { return m.rank }

func (m ResolveMode) String() string {
	switch m.kind {
	case absoluteMax:
		return "max"
	case absoluteMin:
		return "min"
	}
	return "percentile"
}

// FrequencyTable is the list of supported frequencies (kHz) of one domain.
type FrequencyTable []uint64

// Sorted returns an ascending copy of the table.
func (t FrequencyTable) Sorted() FrequencyTable {
	sorted := make(FrequencyTable, len(t))
	copy(sorted, t)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// Pick resolves mode against the table. Percentile positions round down and are clamped to the
// last index. An empty table yields Unresolved.
func (t FrequencyTable) Pick(mode ResolveMode) uint64 {
	if len(t) == 0 {
		return Unresolved
	}
	sorted := t.Sorted()
	switch mode.kind {
	case absoluteMax:
		return sorted[len(sorted)-1]
	case absoluteMin:
		return sorted[0]
	}
	index := int(float64(len(sorted)) * mode.rank)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	if index < 0 {
		index = 0
	}
	return sorted[index]
}
