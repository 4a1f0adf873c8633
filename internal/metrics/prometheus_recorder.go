package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg          *prom.Registry
	resolutions  *prom.CounterVec
	upgradeLinks *prom.CounterVec
	rewrites     prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics in reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		resolutions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docslink",
			Name:      "channel_resolutions_total",
			Help:      "Documentation channel resolutions by channel and fallback reason",
		}, []string{"channel", "reason"}),
		upgradeLinks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docslink",
			Name:      "upgrade_links_total",
			Help:      "Upgrade links rendered by UTM source",
		}, []string{"source"}),
		rewrites: prom.NewCounter(prom.CounterOpts{
			Namespace: "docslink",
			Name:      "markdown_rewrites_total",
			Help:      "Shorthand docs links rewritten in Markdown",
		}),
	}
	reg.MustRegister(pr.resolutions, pr.upgradeLinks, pr.rewrites)
	return pr
}

// Registry returns the registry the recorder's collectors live in.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) IncChannelResolution(channel, reason string) {
	if p == nil || p.resolutions == nil {
		return
	}
	p.resolutions.WithLabelValues(channel, reason).Inc()
}

func (p *PrometheusRecorder) IncUpgradeLink(source string) {
	if p == nil || p.upgradeLinks == nil {
		return
	}
	p.upgradeLinks.WithLabelValues(source).Inc()
}

func (p *PrometheusRecorder) AddRewrites(n int) {
	if p == nil || p.rewrites == nil || n <= 0 {
		return
	}
	p.rewrites.Add(float64(n))
}
