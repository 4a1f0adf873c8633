package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUTMSource(t *testing.T) {
	tests := []struct {
		name string
		f    TokenFeatures
		want string
		paid bool
	}{
		{"oss", TokenFeatures{}, SourceOSS, false},
		{"starter", TokenFeatures{Hosting: true}, SourceStarter, true},
		{"pro self hosted", TokenFeatures{SSO: true}, SourceProSelfHosted, true},
		{"pro cloud", TokenFeatures{SSO: true, Hosting: true}, SourceProCloud, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UTMSource(tt.f))
			assert.Equal(t, tt.paid, IsPaid(tt.f))
		})
	}
}

func TestUpgradeURL(t *testing.T) {
	users := 42
	zero := 0

	assert.Equal(t,
		"https://www.metabase.com/upgrade?utm_media=admin_nav&utm_source=oss",
		UpgradeURL(TokenFeatures{}, nil, "admin_nav"))
	assert.Equal(t,
		"https://www.metabase.com/upgrade?utm_media=license&utm_source=pro-cloud&utm_users=42",
		UpgradeURL(TokenFeatures{SSO: true, Hosting: true}, &users, "license"))
	assert.Equal(t,
		"https://www.metabase.com/upgrade?utm_media=license&utm_source=starter&utm_users=0",
		UpgradeURL(TokenFeatures{Hosting: true}, &zero, "license"))
}

func TestUpgradeURL_EscapesMedia(t *testing.T) {
	got := UpgradeURL(TokenFeatures{}, nil, "settings page&x=1")
	require.Equal(t, "https://www.metabase.com/upgrade?utm_media=settings+page%26x%3D1&utm_source=oss", got)
}

func TestTokenFeatures_YAMLExtra(t *testing.T) {
	var f TokenFeatures
	require.NoError(t, yaml.Unmarshal([]byte("sso: true\nhosting: false\naudit_app: true\n"), &f))
	require.True(t, f.SSO)
	require.False(t, f.Hosting)
	require.True(t, f.Has("audit_app"))
	require.True(t, f.Has("sso"))
	require.False(t, f.Has("whitelabel"))
}
