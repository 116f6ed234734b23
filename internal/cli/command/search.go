// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
)

// SearchCommand returns the search command.
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search for entity records using a Lucene query",
		ArgsUsage: "ENTITY_TYPE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "query",
				Aliases:  []string{"q"},
				Usage:    `Lucene query string (e.g., "isDeleted:0 AND name:John*")`,
				Required: true,
			},
			fieldsFlag("id,name"),
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
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   `Field to sort by (prefix with - for descending, e.g., "-dateAdded")`,
			},
			outputFlag(),
		},
		Action: searchEntities,
	}
}

func searchEntities(c *cli.Context) error {
	entityType := c.Args().First()
	if entityType == "" {
		return fmt.Errorf("usage: bh search ENTITY_TYPE --query QUERY")
	}

	client, err := ensureClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	spinner := newSpinner(c, fmt.Sprintf("Searching for %s records...", entityType))

	query := url.Values{
		"query":  {c.String("query")},
		"fields": {c.String("fields")},
		"count":  {strconv.Itoa(c.Int("count"))},
		"start":  {strconv.Itoa(c.Int("start"))},
	}
	if sort := c.String("sort"); sort != "" {
		query.Set("sort", sort)
	}

	resp, err := client.Get(ctx, "/search/"+entityType, query)
	if err != nil {
		spinner.Fail("Search request failed.")
		return err
	}

	var result struct {
		Data []any `json:"data"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		spinner.Fail("Search request failed.")
		if connection.IsStatus(err, http.StatusBadRequest) {
			fmt.Fprintln(c.App.ErrWriter, color.YellowString("This may be an invalid Lucene query, check your --query value."))
		}
		return err
	}

	if len(result.Data) == 0 {
		spinner.Warn("No records found matching your query.")
		return nil
	}

	spinner.Success(fmt.Sprintf("Found %d records.", len(result.Data)))
	return outputFormatter(c).Format(c.App.Writer, result.Data)
}
