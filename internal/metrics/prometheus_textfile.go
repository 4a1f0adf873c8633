package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile writes every metric in g to path in the text exposition
// format. The file is written atomically via a temp file and rename.
func WriteTextfile(path string, g prom.Gatherer) error {
	if g == nil {
		g = prom.DefaultGatherer
	}
	return prom.WriteToTextfile(path, g)
}
