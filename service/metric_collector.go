package service

import (
	"sync"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	promNamespace = "kanagawa"
	domainSub     = "domain"

	machineIDLabel = "machine_id"
	domainLabel    = "domain"
)

type domainMetrics struct {
	minFreq       uint64
	maxFreq       uint64
	skips         uint64
	writeFailures uint64
}

// MetricCollector exposes the control loop state as const metrics.
type MetricCollector struct {
	mu           sync.Mutex
	utilization  float64
	profile      domain.Profile
	ticks        uint64
	skippedTicks uint64
	domains      *util.GenericMap[string, domainMetrics]

	utilizationDesc   *prometheus.Desc
	profileDesc       *prometheus.Desc
	ticksDesc         *prometheus.Desc
	skippedTicksDesc  *prometheus.Desc
	minFreqDesc       *prometheus.Desc
	maxFreqDesc       *prometheus.Desc
	domainSkipsDesc   *prometheus.Desc
	writeFailuresDesc *prometheus.Desc
}

func NewMetricCollector(machineID string) *MetricCollector {
	constLabels := prometheus.Labels{machineIDLabel: machineID}
	desc := func(subsystem, name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(promNamespace, subsystem, name), help, labels, constLabels)
	}
	return &MetricCollector{
		domains:           util.NewGenericMap[string, domainMetrics](),
		utilizationDesc:   desc("", "cpu_utilization_percent", "Aggregate CPU utilization measured by the last tick"),
		profileDesc:       desc("", "high_load_profile", "1 when the HighLoad profile is active, 0 for LowLoad"),
		ticksDesc:         desc("", "ticks_total", "Control loop iterations"),
		skippedTicksDesc:  desc("", "skipped_ticks_total", "Iterations that wrote nothing because no cpu time elapsed"),
		minFreqDesc:       desc(domainSub, "min_freq_khz", "Last scaling_min_freq written", domainLabel),
		maxFreqDesc:       desc(domainSub, "max_freq_khz", "Last scaling_max_freq written", domainLabel),
		domainSkipsDesc:   desc(domainSub, "skips_total", "Profile applications skipped for the domain", domainLabel),
		writeFailuresDesc: desc(domainSub, "write_failures_total", "Failed writes to the domain's control files", domainLabel),
	}
}

func (c *MetricCollector) ObserveTick(result domain.TickResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks++
	if !result.Applied {
		c.skippedTicks++
		return
	}
	c.utilization = result.Utilization
	c.profile = result.Profile
}

func (c *MetricCollector) ObserveDomain(result domain.DomainResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, _ := c.domains.Load(result.Domain.ID)
	if result.Skipped {
		m.skips++
	} else {
		m.minFreq = result.MinFreq
		m.maxFreq = result.MaxFreq
		m.writeFailures += uint64(result.WriteFailures)
	}
	c.domains.Store(result.Domain.ID, m)
}

func (c *MetricCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.utilizationDesc
	ch <- c.profileDesc
	ch <- c.ticksDesc
	ch <- c.skippedTicksDesc
	ch <- c.minFreqDesc
	ch <- c.maxFreqDesc
	ch <- c.domainSkipsDesc
	ch <- c.writeFailuresDesc
}

func (c *MetricCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	highLoad := 0.0
	if c.profile == domain.HighLoad {
		highLoad = 1
	}
	ch <- prometheus.MustNewConstMetric(c.utilizationDesc, prometheus.GaugeValue, c.utilization)
	ch <- prometheus.MustNewConstMetric(c.profileDesc, prometheus.GaugeValue, highLoad)
	ch <- prometheus.MustNewConstMetric(c.ticksDesc, prometheus.CounterValue, float64(c.ticks))
	ch <- prometheus.MustNewConstMetric(c.skippedTicksDesc, prometheus.CounterValue, float64(c.skippedTicks))
	c.domains.Range(func(id string, m domainMetrics) bool {
		ch <- prometheus.MustNewConstMetric(c.minFreqDesc, prometheus.GaugeValue, float64(m.minFreq), id)
		ch <- prometheus.MustNewConstMetric(c.maxFreqDesc, prometheus.GaugeValue, float64(m.maxFreq), id)
		ch <- prometheus.MustNewConstMetric(c.domainSkipsDesc, prometheus.CounterValue, float64(m.skips), id)
		ch <- prometheus.MustNewConstMetric(c.writeFailuresDesc, prometheus.CounterValue, float64(m.writeFailures), id)
		return true
	})
}
