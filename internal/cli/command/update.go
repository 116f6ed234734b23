// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
)

// UpdateCommand returns the update command.
func UpdateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update an existing entity record by its ID",
		ArgsUsage: `ENTITY_TYPE ID KEY=VALUE [KEY=VALUE...]`,
		Action:    updateEntity,
	}
}

func updateEntity(c *cli.Context) error {
	entityType := c.Args().Get(0)
	entityID := c.Args().Get(1)
	if entityType == "" || entityID == "" {
		return fmt.Errorf("usage: bh update ENTITY_TYPE ID KEY=VALUE...")
	}
	id, err := strconv.ParseInt(entityID, 10, 64)
	if err != nil {
		return fmt.Errorf("entity ID must be numeric, got %q", entityID)
	}

	body, err := ParseFields(c.Args().Slice()[2:])
	if err != nil {
		return err
	}

	client, err := ensureClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	spinner := newSpinner(c, fmt.Sprintf("Updating %s %s...", entityType, entityID))

	resp, err := client.Post(ctx, "/entity/"+entityType+"/"+entityID, nil, body)
	if err != nil {
		spinner.Fail(fmt.Sprintf("Failed to update %s.", entityType))
		return err
	}

	var result changeResponse
	if err := connection.ParseResponse(resp, &result); err != nil {
		spinner.Fail(fmt.Sprintf("Failed to update %s.", entityType))
		return err
	}

	if result.ChangedEntityID == nil || *result.ChangedEntityID != id {
		spinner.Fail(fmt.Sprintf("Failed to update %s.", entityType))
		return fmt.Errorf("API response did not confirm the update for entity %d", id)
	}

	spinner.Success("Successfully updated record.")
	fmt.Fprintf(c.App.Writer, "%s %d has been updated.\n", entityType, id)
	return nil
}
