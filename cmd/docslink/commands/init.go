package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docslink/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	// Friendly user-facing messages on stdout for CLI integration tests.
	_, _ = fmt.Fprintf(g.Out, "Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	return g.println("initialized successfully")
}
