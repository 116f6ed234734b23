// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
)

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch a single entity record by its ID",
		ArgsUsage: "ENTITY_TYPE ID",
		Flags: []cli.Flag{
			fieldsFlag("*"),
			outputFlag(),
		},
		Action: getEntity,
	}
}

func getEntity(c *cli.Context) error {
	entityType := c.Args().Get(0)
	entityID := c.Args().Get(1)
	if entityType == "" || entityID == "" {
		return fmt.Errorf("usage: bh get ENTITY_TYPE ID")
	}

	client, err := ensureClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	spinner := newSpinner(c, fmt.Sprintf("Fetching %s %s...", entityType, entityID))

	query := url.Values{"fields": {c.String("fields")}}
	resp, err := client.Get(ctx, "/entity/"+entityType+"/"+entityID, query)
	if err != nil {
		spinner.Fail("Failed to fetch record.")
		return err
	}

	var result struct {
		Data map[string]any `json:"data"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		spinner.Fail("Failed to fetch record.")
		return err
	}

	spinner.Success(fmt.Sprintf("Fetched %s %s.", entityType, entityID))
	return outputFormatter(c).Format(c.App.Writer, result.Data)
}
