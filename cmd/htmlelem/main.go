// Command htmlelem builds element trees from the command line and prints
// their HTML.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlelem/internal/errors"
	"github.com/vango-dev/htmlelem/pkg/elem"
	"github.com/vango-dev/htmlelem/pkg/render"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli holds the state shared by all commands. It is filled in by the root
// command's PersistentPreRunE.
type cli struct {
	escape   string
	logLevel string
	metrics  bool

	escapeFn elem.EscapeFunc
	logger   *slog.Logger
	renderer *render.Renderer
	registry *prometheus.Registry
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "htmlelem",
		Short: "Build HTML elements and print them",
		Long: `htmlelem builds in-memory HTML element trees and prints their markup.

Attributes outside the allow-list are dropped, text is escaped with the
selected escape mode, and void tags such as img and input render with a
trailing " />".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.dumpMetrics,
	}

	rootCmd.PersistentFlags().StringVar(&c.escape, "escape", "html", "Text escape mode (html, none)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&c.metrics, "metrics", false, "Print render metrics to stderr after the command")

	rootCmd.AddCommand(
		demoCmd(c),
		tagCmd(c),
		versionCmd(),
	)

	return rootCmd
}

// setup builds the logger and renderer from the persistent flags.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return errors.New("E203").
			WithDetail(fmt.Sprintf("Unknown log level %q", c.logLevel)).
			Wrap(err)
	}
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	escape, err := render.ParseEscape(c.escape)
	if err != nil {
		return err
	}
	c.escapeFn = escape

	opts := []render.Option{
		render.WithEscape(escape),
		render.WithLogger(c.logger),
	}
	if c.metrics {
		c.registry = prometheus.NewRegistry()
		opts = append(opts, render.WithMetrics(render.NewMetrics(render.WithRegistry(c.registry))))
	}
	c.renderer = render.NewRenderer(opts...)
	return nil
}

// dumpMetrics writes the collected render metrics in the Prometheus text
// format when --metrics is set.
func (c *cli) dumpMetrics(cmd *cobra.Command, args []string) error {
	if c.registry == nil {
		return nil
	}
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
			return err
		}
	}
	return nil
}

// warn prints a warning message.
func warn(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
