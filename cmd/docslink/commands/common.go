package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docslink/internal/config"
	"git.home.luguber.info/inful/docslink/internal/docsurl"
	derrors "git.home.luguber.info/inful/docslink/internal/errors"
	"git.home.luguber.info/inful/docslink/internal/logfields"
	"git.home.luguber.info/inful/docslink/internal/metrics"
	"git.home.luguber.info/inful/docslink/internal/settings"
	"git.home.luguber.info/inful/docslink/internal/version"
)

// Global carries what every subcommand needs once flags are parsed.
type Global struct {
	Logger   *slog.Logger
	Config   *config.Config
	Settings *settings.Store
	Resolver *docsurl.Resolver
	Recorder metrics.Recorder
	Out      io.Writer

	registry *prom.Registry
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path" default:"docslink.yaml"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics in textfile format to this path" type:"path"`

	Docs    DocsCmd    `cmd:"" help:"Print the documentation URL for the configured version"`
	Channel ChannelCmd `cmd:"" help:"Print the documentation channel a version tag resolves to"`
	Upgrade UpgradeCmd `cmd:"" help:"Print the plan-aware upgrade URL"`
	Store   StoreCmd   `cmd:"" help:"Print a store URL"`
	Learn   LearnCmd   `cmd:"" help:"Print a learn URL"`
	Rewrite RewriteCmd `cmd:"" help:"Expand docs: shorthand links in a Markdown file"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// Setup loads configuration and wires logging, metrics and the resolver.
// The init command skips loading so a broken config file can be replaced.
func (c *CLI) Setup(command string, stdout, stderr io.Writer) (*Global, error) {
	cfg := config.Default()
	if !strings.HasPrefix(command, "init") {
		var err error
		if c.Config == config.DefaultPath {
			cfg, err = config.LoadOptional(c.Config)
		} else {
			cfg, err = config.Load(c.Config)
		}
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logging.NewLogger(stderr, c.Verbose)
	slog.SetDefault(logger)

	g := &Global{
		Logger:   logger,
		Config:   cfg,
		Settings: settings.FromConfig(cfg.Settings),
		Recorder: metrics.NoopRecorder{},
		Out:      stdout,
	}
	if c.MetricsFile != "" {
		g.registry = prom.NewRegistry()
		g.Recorder = metrics.NewPrometheusRecorder(g.registry)
	}
	g.Resolver = docsurl.NewResolver(
		docsurl.WithDocsHost(cfg.Docs.Host),
		docsurl.WithStoreHost(cfg.Docs.StoreHost),
		docsurl.WithRecorder(g.Recorder),
	)
	logger.Debug("Configuration loaded", logfields.Path(c.Config), logfields.Tag(versionTag(g.Settings)))
	return g, nil
}

// Flush writes collected metrics when --metrics-file was given.
func (g *Global) Flush(path string) error {
	if path == "" || g.registry == nil {
		return nil
	}
	if err := metrics.WriteTextfile(path, g.registry); err != nil {
		return derrors.FileWriteError(path, err)
	}
	g.Logger.Debug("Wrote metrics", logfields.Path(path))
	return nil
}

func (g *Global) println(s string) error {
	if _, err := fmt.Fprintln(g.Out, s); err != nil {
		return derrors.InternalError("failed to write output", err)
	}
	return nil
}

// Execute parses args, runs the selected command and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer, opts ...kong.Option) int {
	var cli CLI
	opts = append([]kong.Option{
		kong.Name("docslink"),
		kong.Description("Resolve versioned documentation, store and upgrade links."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
	}, opts...)

	parser, err := kong.New(&cli, opts...)
	if err != nil {
		return derrors.NewCLIErrorAdapter(false, nil).WithOutput(stderr).
			Report(derrors.InternalError("failed to build command line parser", err))
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "docslink: error: %v\n", err)
		return 2
	}

	g, err := cli.Setup(kctx.Command(), stdout, stderr)
	if err != nil {
		return derrors.NewCLIErrorAdapter(cli.Verbose, nil).WithOutput(stderr).Report(err)
	}
	adapter := derrors.NewCLIErrorAdapter(cli.Verbose, g.Logger).WithOutput(stderr)

	// Metrics are written even when the command fails.
	runErr := kctx.Run(g, &cli)
	if err := g.Flush(cli.MetricsFile); err != nil && runErr == nil {
		runErr = err
	}
	return adapter.Report(runErr)
}

func versionTag(s *settings.Store) string {
	if v := s.Version(); v != nil {
		return v.Tag
	}
	return ""
}
