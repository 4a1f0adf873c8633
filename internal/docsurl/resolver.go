package docsurl

import (
	"git.home.luguber.info/inful/docslink/internal/metrics"
)

const (
	DefaultDocsHost  = "www.metabase.com"
	DefaultStoreHost = "store.metabase.com"
)

// Resolver renders links against a configurable set of hosts.
type Resolver struct {
	docsHost  string
	storeHost string
	recorder  metrics.Recorder
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDocsHost overrides the host serving documentation and learn pages.
func WithDocsHost(host string) Option {
	return func(r *Resolver) {
		if host != "" {
			r.docsHost = host
		}
	}
}

// WithStoreHost overrides the store host.
func WithStoreHost(host string) Option {
	return func(r *Resolver) {
		if host != "" {
			r.storeHost = host
		}
	}
}

// WithRecorder attaches a metrics recorder. A nil recorder keeps the noop default.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Resolver) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// NewResolver returns a Resolver using the public product hosts unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		docsHost:  DefaultDocsHost,
		storeHost: DefaultStoreHost,
		recorder:  metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// URLForVersion resolves a documentation URL against the default hosts.
func URLForVersion(v *Version, page, anchor string) string {
	return defaultResolver.URL(v, page, anchor)
}

// DocsHost reports the host documentation links point at.
func (r *Resolver) DocsHost() string { return r.docsHost }

// Channel resolves the channel for v and records the outcome.
func (r *Resolver) Channel(v *Version) Channel {
	ch, reason := resolve(v)
	r.recorder.IncChannelResolution(string(ch), string(reason))
	return ch
}

// URL returns https://<host>/docs/<channel>/<page>.html#<anchor>. The ".html"
// suffix and "#" prefix are only added to non-empty page and anchor values.
func (r *Resolver) URL(v *Version, page, anchor string) string {
	ch := r.Channel(v)
	if page != "" {
		page += ".html"
	}
	if anchor != "" {
		anchor = "#" + anchor
	}
	return "https://" + r.docsHost + "/docs/" + string(ch) + "/" + page + anchor
}
