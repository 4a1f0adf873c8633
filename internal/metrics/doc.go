// Package metrics provides counters for link resolution.
//
// Components receive a Recorder through an option and default to
// NoopRecorder, so nothing needs a nil check:
//
//	resolver := docsurl.NewResolver(docsurl.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The CLI has no long-lived process to scrape, so the Prometheus registry is
// written out in textfile-collector format (see WriteTextfile) when the user
// asks for it, ready for node_exporter's textfile directory.
package metrics
