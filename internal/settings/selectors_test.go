package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/docslink/internal/docsurl"
)

func TestDocsURL(t *testing.T) {
	s := NewStore(Values{KeyVersion: map[string]any{"tag": "v0.45.0"}})
	assert.Equal(t, "https://www.metabase.com/docs/v0.45/databases.html#encryption", DocsURL(s, nil, "databases", "encryption"))

	r := docsurl.NewResolver(docsurl.WithDocsHost("docs.example.com"))
	assert.Equal(t, "https://docs.example.com/docs/v0.45/", DocsURL(s, r, "", ""))

	assert.Equal(t, "https://www.metabase.com/docs/latest/", DocsURL(NewStore(nil), nil, "", ""))
}

func TestUpgradeURL(t *testing.T) {
	s := NewStore(Values{
		KeyTokenFeatures:    map[string]any{"sso": true, "hosting": false},
		KeyActiveUsersCount: 25,
	})
	assert.Equal(t, "https://www.metabase.com/upgrade?utm_media=license&utm_source=pro-self-hosted&utm_users=25", UpgradeURL(s, "license"))
	assert.Equal(t, "pro-self-hosted", UTMSource(s))
	assert.True(t, IsPaidPlan(s))

	oss := NewStore(nil)
	assert.Equal(t, "https://www.metabase.com/upgrade?utm_media=admin_nav&utm_source=oss", UpgradeURL(oss, "admin_nav"))
	assert.False(t, IsPaidPlan(oss))

	negative := NewStore(Values{KeyActiveUsersCount: -3})
	assert.Equal(t, "https://www.metabase.com/upgrade?utm_media=nav&utm_source=oss&utm_users=-3", UpgradeURL(negative, "nav"))
}
