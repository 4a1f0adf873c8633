package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncChannelResolution("v0.45", "none")
	pr.IncChannelResolution("latest", "snapshot")
	pr.IncChannelResolution("latest", "snapshot")
	pr.IncUpgradeLink("oss")
	pr.AddRewrites(3)
	pr.AddRewrites(0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 3)

	require.InDelta(t, 2, testutil.ToFloat64(pr.resolutions.WithLabelValues("latest", "snapshot")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.upgradeLinks.WithLabelValues("oss")), 0)
	require.InDelta(t, 3, testutil.ToFloat64(pr.rewrites), 0)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.IncChannelResolution("latest", "absent")
		pr.IncUpgradeLink("oss")
		pr.AddRewrites(1)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncChannelResolution("v0.45", "none")

	path := filepath.Join(t.TempDir(), "docslink.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `docslink_channel_resolutions_total{channel="v0.45",reason="none"} 1`))
}
