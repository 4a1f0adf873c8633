// Package settings holds the product settings links are derived from and the
// selectors that turn them into URLs.
//
// Values are kept raw, exactly as decoded from configuration. Typed accessors
// interpret them leniently: a malformed value reads as absent and is logged at
// debug level, so a bad setting degrades a link instead of failing it.
package settings

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/docslink/internal/docsurl"
	"git.home.luguber.info/inful/docslink/internal/logfields"
	"git.home.luguber.info/inful/docslink/internal/plan"
)

// Key names a setting.
type Key string

const (
	KeyVersion          Key = "version"
	KeyTokenFeatures    Key = "token-features"
	KeyActiveUsersCount Key = "active-users-count"
	KeySiteURL          Key = "site-url"
	KeySiteName         Key = "site-name"
)

// Values maps setting keys to their raw decoded values.
type Values map[Key]any

// Store is an immutable snapshot of settings.
type Store struct {
	values  Values
	loading bool
}

// NewStore copies values into a new Store.
func NewStore(values Values) *Store {
	cp := make(Values, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &Store{values: cp}
}

// FromConfig builds a Store from the settings section of the configuration.
func FromConfig(raw map[string]any) *Store {
	values := make(Values, len(raw))
	for k, v := range raw {
		values[Key(k)] = v
	}
	return &Store{values: values}
}

// Loading returns a copy of s flagged as still loading.
func (s *Store) Loading() *Store {
	return &Store{values: s.values, loading: true}
}

// IsLoading reports whether the settings are still being fetched.
func (s *Store) IsLoading() bool { return s.loading }

// Values returns a copy of all settings.
func (s *Store) Values() Values {
	cp := make(Values, len(s.values))
	for k, v := range s.values {
		cp[k] = v
	}
	return cp
}

// Get returns the raw value for key.
func (s *Store) Get(key Key) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// String returns a string setting, or "" when absent or not a string.
func (s *Store) String(key Key) string {
	v, ok := s.values[key]
	if !ok || v == nil {
		return ""
	}
	str, ok := v.(string)
	if !ok {
		malformed(key, v)
	}
	return str
}

// Version returns the version descriptor, or nil when absent or malformed.
// A bare string is accepted as the tag.
func (s *Store) Version() *docsurl.Version {
	raw, ok := s.values[KeyVersion]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case *docsurl.Version:
		return v
	case docsurl.Version:
		return &v
	case string:
		return &docsurl.Version{Tag: v}
	case map[string]any:
		return &docsurl.Version{
			Tag:  stringField(v, "tag"),
			Date: stringField(v, "date"),
			Hash: stringField(v, "hash"),
		}
	}
	malformed(KeyVersion, raw)
	return nil
}

// TokenFeatures returns the token features; absent or malformed values read
// as no features (the open-source plan).
func (s *Store) TokenFeatures() plan.TokenFeatures {
	raw, ok := s.values[KeyTokenFeatures]
	if !ok || raw == nil {
		return plan.TokenFeatures{}
	}
	switch v := raw.(type) {
	case plan.TokenFeatures:
		return v
	case map[string]any:
		var f plan.TokenFeatures
		for name, val := range v {
			enabled, ok := val.(bool)
			if !ok {
				malformed(KeyTokenFeatures, val)
				continue
			}
			switch name {
			case "sso":
				f.SSO = enabled
			case "hosting":
				f.Hosting = enabled
			default:
				if f.Extra == nil {
					f.Extra = map[string]bool{}
				}
				f.Extra[name] = enabled
			}
		}
		return f
	}
	malformed(KeyTokenFeatures, raw)
	return plan.TokenFeatures{}
}

// ActiveUsersCount returns the active user count, or nil when unknown.
func (s *Store) ActiveUsersCount() *int {
	raw, ok := s.values[KeyActiveUsersCount]
	if !ok || raw == nil {
		return nil
	}
	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case uint64:
		if v > math.MaxInt {
			malformed(KeyActiveUsersCount, raw)
			return nil
		}
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			malformed(KeyActiveUsersCount, raw)
			return nil
		}
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			malformed(KeyActiveUsersCount, raw)
			return nil
		}
		n = parsed
	default:
		malformed(KeyActiveUsersCount, raw)
		return nil
	}
	return &n
}

func stringField(m map[string]any, name string) string {
	s, _ := m[name].(string)
	return s
}

func malformed(key Key, v any) {
	slog.Debug("Ignoring malformed setting", logfields.Setting(string(key)), slog.Any("value", v))
}
