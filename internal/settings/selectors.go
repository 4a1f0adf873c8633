package settings

import (
	"git.home.luguber.info/inful/docslink/internal/docsurl"
	"git.home.luguber.info/inful/docslink/internal/plan"
)

// DocsURL links to a docs page for the configured version.
func DocsURL(s *Store, r *docsurl.Resolver, page, anchor string) string {
	if r == nil {
		return docsurl.URLForVersion(s.Version(), page, anchor)
	}
	return r.URL(s.Version(), page, anchor)
}

// UpgradeURL links to the upgrade page, attributed to the instance's plan and size.
func UpgradeURL(s *Store, media string) string {
	return plan.UpgradeURL(s.TokenFeatures(), s.ActiveUsersCount(), media)
}

// UTMSource names the instance's plan for attribution.
func UTMSource(s *Store) string {
	return plan.UTMSource(s.TokenFeatures())
}

// IsPaidPlan reports whether the instance runs on any paid plan.
func IsPaidPlan(s *Store) bool {
	return plan.IsPaid(s.TokenFeatures())
}
