// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"
	"net/http"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
)

// QueryCommand returns the query command.
func QueryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Query for entity records using a SQL-like WHERE clause",
		ArgsUsage: "ENTITY_TYPE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "where",
				Aliases:  []string{"w"},
				Usage:    `SQL-like WHERE clause (e.g., "id > 100 AND status = 'Active'")`,
				Required: true,
			},
			fieldsFlag("id"),
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of records to return per page",
				Value: 15,
			},
			&cli.IntFlag{
				Name:  "start",
				Usage: "Starting index for pagination",
				Value: 0,
			},
			&cli.StringFlag{
				Name:  "orderBy",
				Usage: `Field to sort by (append DESC for descending, e.g., "name DESC")`,
			},
			outputFlag(),
		},
		Action: queryEntities,
	}
}

func queryEntities(c *cli.Context) error {
	entityType := c.Args().First()
	if entityType == "" {
		return fmt.Errorf("usage: bh query ENTITY_TYPE --where CLAUSE")
	}

	client, err := ensureClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	spinner := newSpinner(c, fmt.Sprintf("Querying for %s records...", entityType))

	params := map[string]any{
		"where":  c.String("where"),
		"fields": c.String("fields"),
		"count":  c.Int("count"),
		"start":  c.Int("start"),
	}
	if orderBy := c.String("orderBy"); orderBy != "" {
		params["orderBy"] = orderBy
	}

	resp, err := client.Post(ctx, "/query/"+entityType, nil, map[string]any{"params": params})
	if err != nil {
		spinner.Fail("Query request failed.")
		return err
	}

	var result struct {
		Data []any `json:"data"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		spinner.Fail("Query request failed.")
		if connection.IsStatus(err, http.StatusBadRequest) {
			fmt.Fprintln(c.App.ErrWriter, color.YellowString("This may be an invalid WHERE clause, check your --where value."))
		}
		return err
	}

	if len(result.Data) == 0 {
		spinner.Warn("No records found matching your WHERE clause.")
		return nil
	}

	spinner.Success(fmt.Sprintf("Found %d records.", len(result.Data)))
	return outputFormatter(c).Format(c.App.Writer, result.Data)
}
