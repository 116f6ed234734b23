// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
)

// CreateCommand returns the create command.
func CreateCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new entity record",
		ArgsUsage: `ENTITY_TYPE KEY=VALUE [KEY=VALUE...]`,
		Action:    createEntity,
	}
}

// changeResponse is the Bullhorn response to a create or update.
type changeResponse struct {
	ChangedEntityID *int64 `json:"changedEntityId"`
}

func createEntity(c *cli.Context) error {
	entityType := c.Args().First()
	if entityType == "" {
		return fmt.Errorf("usage: bh create ENTITY_TYPE KEY=VALUE...")
	}

	body, err := ParseFields(c.Args().Tail())
	if err != nil {
		return err
	}

	client, err := ensureClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	spinner := newSpinner(c, fmt.Sprintf("Creating new %s...", entityType))

	resp, err := client.Post(ctx, "/entity/"+entityType, nil, body)
	if err != nil {
		spinner.Fail(fmt.Sprintf("Failed to create %s.", entityType))
		return err
	}

	var result changeResponse
	if err := connection.ParseResponse(resp, &result); err != nil {
		spinner.Fail(fmt.Sprintf("Failed to create %s.", entityType))
		return err
	}

	if result.ChangedEntityID == nil {
		spinner.Fail(fmt.Sprintf("Failed to create %s.", entityType))
		return fmt.Errorf("API response did not include the new entity ID")
	}

	spinner.Success("Successfully created record.")
	fmt.Fprintf(c.App.Writer, "New %s ID: %d\n", entityType, *result.ChangedEntityID)
	return nil
}
