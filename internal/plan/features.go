// Package plan derives licensing facts from the token-features setting: which
// plan an instance is on and where its upgrade link points.
package plan

// TokenFeatures is the subset of the token-features setting link building
// cares about. Extra keeps the remaining flags so they survive a round trip.
type TokenFeatures struct {
	SSO     bool            `json:"sso" yaml:"sso"`
	Hosting bool            `json:"hosting" yaml:"hosting"`
	Extra   map[string]bool `json:"-" yaml:",inline"`
}

// UTM sources reported on upgrade links.
const (
	SourceProCloud      = "pro-cloud"
	SourceProSelfHosted = "pro-self-hosted"
	SourceStarter       = "starter"
	SourceOSS           = "oss"
)

// UTMSource names the plan for attribution: SSO marks a Pro token and
// hosting marks a cloud instance.
func UTMSource(f TokenFeatures) string {
	if f.SSO {
		if f.Hosting {
			return SourceProCloud
		}
		return SourceProSelfHosted
	}
	if f.Hosting {
		return SourceStarter
	}
	return SourceOSS
}

// IsPaid reports whether the features belong to any paid plan.
func IsPaid(f TokenFeatures) bool {
	return f.SSO || f.Hosting
}

// Has reports whether a named feature is enabled, including the two typed ones.
func (f TokenFeatures) Has(name string) bool {
	switch name {
	case "sso":
		return f.SSO
	case "hosting":
		return f.Hosting
	}
	return f.Extra[name]
}
