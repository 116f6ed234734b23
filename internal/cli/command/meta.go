// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/connection"
	"github.com/bullhorn-tools/bh-cli/internal/cli/output"
)

// MetaCommand returns the meta command.
func MetaCommand() *cli.Command {
	return &cli.Command{
		Name:      "meta",
		Usage:     "Get metadata for a Bullhorn entity (fields, types, labels)",
		ArgsUsage: "ENTITY_TYPE",
		Flags: []cli.Flag{
			fieldsFlag("*"),
			outputFlag(),
		},
		Action: metaEntity,
	}
}

func metaEntity(c *cli.Context) error {
	entityType := c.Args().First()
	if entityType == "" {
		return fmt.Errorf("usage: bh meta ENTITY_TYPE")
	}

	client, err := ensureClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	spinner := newSpinner(c, fmt.Sprintf("Fetching metadata for %s...", entityType))

	query := url.Values{"fields": {c.String("fields")}}
	resp, err := client.Get(ctx, "/meta/"+entityType, query)
	if err != nil {
		spinner.Fail("Failed to fetch metadata.")
		return err
	}

	var metadata map[string]any
	if err := connection.ParseResponse(resp, &metadata); err != nil {
		spinner.Fail("Failed to fetch metadata.")
		return err
	}

	spinner.Success(fmt.Sprintf("Fetched metadata for %s.", entityType))

	if c.String("output") != "table" {
		return outputFormatter(c).Format(c.App.Writer, metadata)
	}

	fields, _ := metadata["fields"].([]any)
	if len(fields) == 0 {
		fmt.Fprintln(c.App.Writer, "No field information returned for this entity.")
		return nil
	}

	return metaTable(fields).Render(c.App.Writer)
}

// metaTable flattens the field descriptors into a fixed-column table.
func metaTable(fields []any) *output.Table {
	table := &output.Table{}
	table.SetHeaders("NAME", "TYPE", "DATA TYPE", "LABEL", "REQUIRED", "READ-ONLY")

	for _, f := range fields {
		field, ok := f.(map[string]any)
		if !ok {
			continue
		}
		table.AddRow(
			stringField(field, "name"),
			stringField(field, "type"),
			stringField(field, "dataType"),
			stringField(field, "label"),
			boolMark(field, "required"),
			boolMark(field, "readOnly"),
		)
	}

	return table
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func boolMark(m map[string]any, key string) string {
	if b, ok := m[key].(bool); ok && b {
		return "yes"
	}
	return ""
}
