package domain

// CPUSnapshot is a point-in-time reading of the cumulative aggregate CPU tick counters.
type CPUSnapshot struct {
	Idle  uint64 // idle + iowait ticks
	Total uint64 // user + nice + system + idle + iowait + irq + softirq + steal ticks
}

// IsZero reports whether the snapshot carries no data, which is what a failed sample degrades to.
func (s CPUSnapshot) IsZero() bool {
	return s.Idle == 0 && s.Total == 0
}

// Utilization returns the busy percentage over the interval between prev and curr.
// The result is not clamped: a counter reset between the two snapshots wraps the unsigned
// deltas and yields a meaningless value.
func Utilization(prev, curr CPUSnapshot) float64 {
	deltaTotal := curr.Total - prev.Total
	if deltaTotal == 0 {
		return 0.0
	}
	deltaIdle := curr.Idle - prev.Idle
	return 100 * float64(deltaTotal-deltaIdle) / float64(deltaTotal)
}
