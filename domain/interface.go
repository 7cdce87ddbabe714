package domain

import (
	"context"
	"time"
)

// UtilizationSampler reads the aggregate CPU tick counters.
type UtilizationSampler interface {
	// Sample returns the current counters, or the zero snapshot when they cannot be read
	Sample(ctx context.Context) CPUSnapshot
}

// FrequencyController discovers scaling domains and reads/writes their cpufreq control files
type FrequencyController interface {
	// Domains lists the scaling domains currently exposed by the control interface
	Domains(ctx context.Context) ([]ScalingDomain, error)
	// Resolve derives a frequency from the domain's table, or Unresolved
	Resolve(ctx context.Context, d ScalingDomain, mode ResolveMode) uint64
	// WriteMinFreq sets the domain's lower boundary
	WriteMinFreq(ctx context.Context, d ScalingDomain, khz uint64) error
	// WriteMaxFreq sets the domain's upper boundary
	WriteMaxFreq(ctx context.Context, d ScalingDomain, khz uint64) error
	// Inspect reads everything known about a domain without modifying it
	Inspect(ctx context.Context, d ScalingDomain) DomainState
}

// Service defines the interface for the service layer
type Service interface {
	// Run drives the control loop until ctx is cancelled
	Run(ctx context.Context) error
	// Tick performs one control-loop iteration starting from the previous snapshot
	Tick(ctx context.Context, prev CPUSnapshot) TickResult
	// ApplyProfile writes the profile's boundaries to every scaling domain
	ApplyProfile(ctx context.Context, profile Profile) ApplyReport
	// MeasureUtilization samples twice, window apart, and returns the busy percentage
	MeasureUtilization(ctx context.Context, window time.Duration) (float64, error)
	// LastTick returns the most recent tick result, if any tick has run
	LastTick() (TickResult, bool)
	// DomainStates inspects every scaling domain
	DomainStates(ctx context.Context) ([]DomainState, error)
	// Classify maps a utilization percentage to a profile using the configured threshold
	Classify(utilization float64) Profile
}
