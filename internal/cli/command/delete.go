// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
	"github.com/bullhorn-tools/bh-cli/internal/cli/prompt"
)

// DeleteCommand returns the delete command.
func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an entity record",
		ArgsUsage: "ENTITY_TYPE ID",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Bypass the confirmation prompt",
			},
		},
		Action: deleteEntity,
	}
}

func deleteEntity(c *cli.Context) error {
	entityType := c.Args().Get(0)
	entityID := c.Args().Get(1)
	if entityType == "" || entityID == "" {
		return fmt.Errorf("usage: bh delete ENTITY_TYPE ID")
	}

	if !c.Bool("force") {
		p := prompt.New(stdin, os.Stderr)
		confirmed, err := p.Confirm(fmt.Sprintf(
			"Are you sure you want to DELETE %s %s? This cannot be undone.",
			entityType, entityID))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(c.App.Writer, "Deletion cancelled.")
			return nil
		}
	}

	client, err := ensureClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	spinner := newSpinner(c, fmt.Sprintf("Deleting %s %s...", entityType, entityID))

	resp, err := client.Delete(ctx, "/entity/"+entityType+"/"+entityID)
	if err != nil {
		spinner.Fail(fmt.Sprintf("Failed to delete %s.", entityType))
		return err
	}

	if err := connection.ParseResponse(resp, nil); err != nil {
		spinner.Fail(fmt.Sprintf("Failed to delete %s.", entityType))
		return err
	}

	spinner.Success("Successfully deleted record.")
	return nil
}
