package commands

import (
	"git.home.luguber.info/inful/docslink/internal/logfields"
	"git.home.luguber.info/inful/docslink/internal/plan"
	"git.home.luguber.info/inful/docslink/internal/settings"
)

// UpgradeCmd implements the 'upgrade' command.
type UpgradeCmd struct {
	Media   string `short:"m" required:"" help:"utm_media value naming where the link is shown"`
	SSO     bool   `name:"sso" help:"Treat the instance as having the SSO feature"`
	Hosting bool   `help:"Treat the instance as cloud hosted"`
	Users   int    `short:"u" default:"-1" help:"Active user count (defaults to the configured setting)"`
}

func (u *UpgradeCmd) Run(g *Global) error {
	features := g.Settings.TokenFeatures()
	if u.SSO {
		features.SSO = true
	}
	if u.Hosting {
		features.Hosting = true
	}
	users := g.Settings.ActiveUsersCount()
	if u.Users >= 0 {
		users = &u.Users
	}

	source := plan.UTMSource(features)
	g.Recorder.IncUpgradeLink(source)
	g.Logger.Debug("Built upgrade URL",
		logfields.Media(u.Media),
		logfields.Source(source))
	return g.println(plan.UpgradeURL(features, users, u.Media))
}

// StoreCmd implements the 'store' command.
type StoreCmd struct {
	Path string `arg:"" optional:"" help:"Path below the store root"`
}

func (s *StoreCmd) Run(g *Global) error {
	if settings.IsPaidPlan(g.Settings) {
		g.Logger.Debug("Instance already on a paid plan", logfields.Source(settings.UTMSource(g.Settings)))
	}
	return g.println(g.Resolver.StoreURL(s.Path))
}

// LearnCmd implements the 'learn' command.
type LearnCmd struct {
	Path string `arg:"" optional:"" help:"Path below the learn root"`
}

func (l *LearnCmd) Run(g *Global) error {
	return g.println(g.Resolver.LearnURL(l.Path))
}
