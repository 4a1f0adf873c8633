package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Tag", KeyTag, "v0.45.2", Tag("v0.45.2")},
		{"Channel", KeyChannel, "v0.45", Channel("v0.45")},
		{"Reason", KeyReason, "snapshot", Reason("snapshot")},
		{"Page", KeyPage, "databases", Page("databases")},
		{"Anchor", KeyAnchor, "encryption", Anchor("encryption")},
		{"Media", KeyMedia, "admin_nav", Media("admin_nav")},
		{"Source", KeySource, "oss", Source("oss")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Setting", KeySetting, "version", Setting("version")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if tc.attr.Value.String() != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, tc.attr.Value.String())
		}
	}
}

func TestCountAndError(t *testing.T) {
	if a := Count(3); a.Key != KeyCount || a.Value.Int64() != 3 {
		t.Fatalf("unexpected count attr %v", a)
	}
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("nil error should log empty string, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("unexpected error attr %v", a)
	}
}
