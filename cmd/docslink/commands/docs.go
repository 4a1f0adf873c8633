package commands

import (
	"git.home.luguber.info/inful/docslink/internal/docsurl"
	"git.home.luguber.info/inful/docslink/internal/logfields"
	"git.home.luguber.info/inful/docslink/internal/settings"
)

// DocsCmd implements the 'docs' command.
type DocsCmd struct {
	Tag    string `short:"t" help:"Version tag to resolve instead of the configured version"`
	Page   string `short:"p" help:"Documentation page slug, e.g. databases/connecting"`
	Anchor string `short:"a" help:"Anchor within the page"`
}

func (d *DocsCmd) Run(g *Global) error {
	var url string
	if d.Tag != "" {
		url = g.Resolver.URL(&docsurl.Version{Tag: d.Tag}, d.Page, d.Anchor)
	} else {
		url = settings.DocsURL(g.Settings, g.Resolver, d.Page, d.Anchor)
	}
	g.Logger.Debug("Resolved docs URL",
		logfields.Tag(effectiveTag(g, d.Tag)),
		logfields.Page(d.Page),
		logfields.Anchor(d.Anchor))
	return g.println(url)
}

// ChannelCmd implements the 'channel' command.
type ChannelCmd struct {
	Tag string `short:"t" help:"Version tag to resolve instead of the configured version"`
}

func (c *ChannelCmd) Run(g *Global) error {
	v := g.Settings.Version()
	if c.Tag != "" {
		v = &docsurl.Version{Tag: c.Tag}
	}
	ch := g.Resolver.Channel(v)
	_, reason := docsurl.ExplainChannel(v)
	g.Logger.Debug("Resolved docs channel",
		logfields.Tag(effectiveTag(g, c.Tag)),
		logfields.Channel(ch.String()),
		logfields.Reason(string(reason)))
	return g.println(ch.String())
}

func effectiveTag(g *Global, override string) string {
	if override != "" {
		return override
	}
	return versionTag(g.Settings)
}
