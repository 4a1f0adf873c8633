package commands

import (
	"os"

	"git.home.luguber.info/inful/docslink/internal/docsurl"
	derrors "git.home.luguber.info/inful/docslink/internal/errors"
	"git.home.luguber.info/inful/docslink/internal/linkrewrite"
	"git.home.luguber.info/inful/docslink/internal/logfields"
)

// RewriteCmd implements the 'rewrite' command.
type RewriteCmd struct {
	File    string `arg:"" help:"Markdown file to rewrite" type:"path"`
	InPlace bool   `short:"i" name:"in-place" help:"Write the result back to the file instead of stdout"`
	Tag     string `short:"t" help:"Version tag to resolve instead of the configured version"`
}

func (r *RewriteCmd) Run(g *Global) error {
	body, err := os.ReadFile(r.File)
	if err != nil {
		return derrors.FileReadError(r.File, err)
	}

	v := g.Settings.Version()
	if r.Tag != "" {
		v = &docsurl.Version{Tag: r.Tag}
	}
	res, err := linkrewrite.New(g.Resolver, v).Rewrite(body)
	if err != nil {
		if dle, ok := derrors.As(err); ok {
			return dle.WithContext("path", r.File)
		}
		return err
	}
	g.Recorder.AddRewrites(len(res.Changes))
	g.Logger.Info("Rewrote docs links", logfields.Path(r.File), logfields.Count(len(res.Changes)))

	if !r.InPlace {
		if _, err := g.Out.Write(res.Body); err != nil {
			return derrors.InternalError("failed to write output", err)
		}
		return nil
	}
	if len(res.Changes) == 0 {
		return nil
	}
	info, err := os.Stat(r.File)
	if err != nil {
		return derrors.FileReadError(r.File, err)
	}
	if err := os.WriteFile(r.File, res.Body, info.Mode().Perm()); err != nil {
		return derrors.FileWriteError(r.File, err)
	}
	return nil
}
