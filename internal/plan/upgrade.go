package plan

import (
	"net/url"
	"strconv"
	"strings"
)

// UpgradeBaseURL is the landing page upgrade links point at.
const UpgradeBaseURL = "https://www.metabase.com/upgrade"

// UpgradeURL builds the upgrade link for an instance. Query parameters are
// emitted in the order utm_media, utm_source, utm_users; utm_users is left out
// when activeUsers is nil.
func UpgradeURL(f TokenFeatures, activeUsers *int, media string) string {
	params := [][2]string{
		{"utm_media", media},
		{"utm_source", UTMSource(f)},
	}
	if activeUsers != nil {
		params = append(params, [2]string{"utm_users", strconv.Itoa(*activeUsers)})
	}

	// url.Values.Encode sorts keys, which would reorder the query.
	var b strings.Builder
	b.WriteString(UpgradeBaseURL)
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}
