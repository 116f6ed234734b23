// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/bullhorn-tools/bh-cli/internal/cli/auth"
	"github.com/bullhorn-tools/bh-cli/internal/cli/config"
	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
	"github.com/bullhorn-tools/bh-cli/internal/cli/output"
	"github.com/bullhorn-tools/bh-cli/internal/core/domain"
	"github.com/bullhorn-tools/bh-cli/internal/telemetry/logger"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// stdin is the interactive input source, swapped out in tests.
var stdin io.Reader = os.Stdin

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "bh",
		Usage:   "Bullhorn ATS command-line client",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			AuthCommand(),
			GetCommand(),
			SearchCommand(),
			QueryCommand(),
			CreateCommand(),
			UpdateCommand(),
			DeleteCommand(),
			MetaCommand(),
			EntitiesCommand(),
			ShellCommand(),
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logger.SetDefault(logger.New(logger.Config{
					Level:  "debug",
					Format: "text",
				}))
			}
			c.App.Metadata["store"] = config.NewFileStore(c.String("config"))
			return nil
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Session file path",
			EnvVars: []string{"BH_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
		&cli.StringFlag{
			Name:    "discovery-url",
			Usage:   "Override the data-center discovery endpoint (sandbox environments)",
			EnvVars: []string{"BH_DISCOVERY_URL"},
			Value:   auth.DefaultDiscoveryURL,
			Hidden:  true,
		},
	}
}

// getStore retrieves the session store from the app metadata.
func getStore(c *cli.Context) config.Store {
	if s, ok := c.App.Metadata["store"].(config.Store); ok {
		return s
	}
	return config.NewFileStore(c.String("config"))
}

// ensureClient loads the stored session and returns an authenticated
// client with the refresh interceptor wired in. Commands that work
// without a session (auth, entities) never call this.
func ensureClient(c *cli.Context) (*connection.Client, error) {
	store := getStore(c)

	session, err := store.Load()
	if err != nil {
		return nil, err
	}
	if !session.Active() {
		return nil, domain.ErrNotLoggedIn
	}

	flow := auth.NewFlow(store)
	return connection.NewClient(session.RestURL, session.BhRestToken,
		connection.WithRefresher(flow)), nil
}

// newSpinner starts a spinner on stderr. The animation is suppressed
// when stderr is not a terminal or when verbose logging is on.
func newSpinner(c *cli.Context, message string) *output.Spinner {
	enabled := term.IsTerminal(int(os.Stderr.Fd())) && !c.Bool("verbose")
	s := output.NewSpinner(os.Stderr, message, enabled)
	s.Start()
	return s
}

// requestContext returns the per-command request context.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// outputFormatter builds the formatter selected by the --output flag.
func outputFormatter(c *cli.Context) output.Formatter {
	return output.NewFormatter(output.Format(c.String("output")))
}

// outputFlag is the shared --output flag definition.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output format: table, json, yaml",
		Value:   "table",
	}
}

// fieldsFlag is the shared --fields flag definition.
func fieldsFlag(defaultValue string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "fields",
		Aliases: []string{"f"},
		Usage:   "Comma-separated list of fields to return",
		Value:   defaultValue,
	}
}
