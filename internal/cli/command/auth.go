// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/auth"
	"github.com/bullhorn-tools/bh-cli/internal/cli/config"
	"github.com/bullhorn-tools/bh-cli/internal/cli/prompt"
	"github.com/bullhorn-tools/bh-cli/internal/core/domain"
)

// AuthCommand returns the auth subcommand group.
func AuthCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Bullhorn authentication (login, logout, status)",
		Subcommands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Authenticate with the Bullhorn API and save the session",
				Action: authLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear stored credentials and end the current session",
				Action: authLogout,
			},
			{
				Name:   "status",
				Usage:  "Check the current authentication status",
				Action: authStatus,
			},
		},
	}
}

func authLogin(c *cli.Context) error {
	defaults, err := config.LoadLoginDefaults()
	if err != nil {
		return err
	}

	p := prompt.New(stdin, os.Stderr)

	creds := domain.Credentials{}
	if creds.Username, err = p.Input("Bullhorn username", defaults.Username); err != nil {
		return err
	}
	if creds.Password, err = p.Password("Bullhorn password", defaults.Password); err != nil {
		return err
	}
	if creds.ClientID, err = p.Input("API client ID", defaults.ClientID); err != nil {
		return err
	}
	if creds.ClientSecret, err = p.Password("API client secret", defaults.ClientSecret); err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	spinner := newSpinner(c, "Authenticating with Bullhorn...")

	flow := auth.NewFlow(getStore(c), auth.WithDiscoveryURL(c.String("discovery-url")))
	session, err := flow.Login(ctx, creds)
	if err != nil {
		spinner.Fail("Authentication failed.")
		return err
	}

	spinner.Success(color.GreenString("Successfully authenticated."))
	fmt.Fprintf(c.App.Writer, "Your API session is now active.\n")
	fmt.Fprintf(c.App.Writer, "REST URL: %s\n", session.RestURL)
	return nil
}

func authLogout(c *cli.Context) error {
	flow := auth.NewFlow(getStore(c))
	if err := flow.Logout(); err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, color.GreenString("Successfully logged out."))
	fmt.Fprintln(c.App.Writer, "All stored credentials and session data have been removed.")
	return nil
}

func authStatus(c *cli.Context) error {
	session, err := getStore(c).Load()
	if err != nil {
		return err
	}

	if session.Active() {
		fmt.Fprintln(c.App.Writer, color.GreenString("You are logged in."))
		fmt.Fprintf(c.App.Writer, "REST URL: %s\n", session.RestURL)
	} else {
		fmt.Fprintln(c.App.Writer, color.YellowString("You are not logged in."))
		fmt.Fprintf(c.App.Writer, "Run %s to authenticate.\n", color.CyanString("bh auth login"))
	}
	return nil
}
