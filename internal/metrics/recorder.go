package metrics

// Recorder defines observability hooks for link resolution. Implementations
// may forward to Prometheus or be swapped for a test double.
type Recorder interface {
	// IncChannelResolution counts a resolved docs channel; reason is "none"
	// unless the resolver fell back to latest.
	IncChannelResolution(channel, reason string)
	IncUpgradeLink(source string)
	AddRewrites(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncChannelResolution(string, string) {}
func (NoopRecorder) IncUpgradeLink(string)               {}
func (NoopRecorder) AddRewrites(int)                     {}
