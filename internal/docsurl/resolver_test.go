package docsurl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	resolutions map[string]int
}

func (c *countingRecorder) IncChannelResolution(channel, reason string) {
	if c.resolutions == nil {
		c.resolutions = map[string]int{}
	}
	c.resolutions[channel+"/"+reason]++
}
func (c *countingRecorder) IncUpgradeLink(string) {}
func (c *countingRecorder) AddRewrites(int)       {}

func TestURLForVersion(t *testing.T) {
	tests := []struct {
		name   string
		v      *Version
		page   string
		anchor string
		want   string
	}{
		{"absent version", nil, "", "", "https://www.metabase.com/docs/latest/"},
		{"release", &Version{Tag: "v0.45.2"}, "", "", "https://www.metabase.com/docs/v0.45/"},
		{"enterprise release", &Version{Tag: "v1.45.0"}, "", "", "https://www.metabase.com/docs/v0.45/"},
		{"snapshot", &Version{Tag: "v0.45.0-SNAPSHOT"}, "", "", "https://www.metabase.com/docs/latest/"},
		{"garbage", &Version{Tag: "garbage"}, "", "", "https://www.metabase.com/docs/latest/"},
		{"page and anchor", &Version{Tag: "v0.45.0"}, "databases", "encryption", "https://www.metabase.com/docs/v0.45/databases.html#encryption"},
		{"page only", &Version{Tag: "v0.45.0"}, "databases", "", "https://www.metabase.com/docs/v0.45/databases.html"},
		{"anchor only", &Version{Tag: "v0.45.0"}, "", "top", "https://www.metabase.com/docs/v0.45/#top"},
		{"nested page", nil, "configuring-metabase/environment-variables", "", "https://www.metabase.com/docs/latest/configuring-metabase/environment-variables.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URLForVersion(tt.v, tt.page, tt.anchor))
		})
	}
}

func TestResolverURL_Idempotent(t *testing.T) {
	r := NewResolver()
	v := &Version{Tag: "v0.45.0"}
	first := r.URL(v, "databases", "encryption")
	second := r.URL(v, "databases", "encryption")
	require.Equal(t, first, second)
	require.Equal(t, "v0.45.0", v.Tag, "version must not be modified")
}

func TestResolverURL_CustomHost(t *testing.T) {
	r := NewResolver(WithDocsHost("docs.internal.example"))
	got := r.URL(&Version{Tag: "v0.50.3"}, "api", "")
	require.Equal(t, "https://docs.internal.example/docs/v0.50/api.html", got)
	require.Equal(t, "docs.internal.example", r.DocsHost())
}

func TestResolverURL_EmptyOptionsKeepDefaults(t *testing.T) {
	r := NewResolver(WithDocsHost(""), WithStoreHost(""), WithRecorder(nil))
	require.True(t, strings.HasPrefix(r.URL(nil, "", ""), "https://"+DefaultDocsHost+"/"))
	require.Equal(t, "https://"+DefaultStoreHost+"/", r.StoreURL(""))
}

func TestResolver_RecordsResolutions(t *testing.T) {
	rec := &countingRecorder{}
	r := NewResolver(WithRecorder(rec))

	r.URL(&Version{Tag: "v0.45.0"}, "", "")
	r.URL(&Version{Tag: "v0.45.0-SNAPSHOT"}, "", "")
	r.Channel(nil)
	r.Channel(&Version{Tag: "nope"})

	require.Equal(t, map[string]int{
		"v0.45/none":       1,
		"latest/snapshot":  1,
		"latest/absent":    1,
		"latest/unmatched": 1,
	}, rec.resolutions)
}
