// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// EntitiesCommand returns the entities command. It prints a static
// relationship diagram and never touches the network, so it works
// without a session.
func EntitiesCommand() *cli.Command {
	return &cli.Command{
		Name:   "entities",
		Usage:  "Display a flowchart of major Bullhorn entities and their relationships",
		Action: showEntities,
	}
}

func showEntities(c *cli.Context) error {
	entity := color.New(color.FgCyan, color.Bold).SprintFunc()
	note := color.New(color.FgHiBlack).SprintFunc()
	header := color.New(color.FgYellow, color.Bold).SprintFunc()

	fmt.Fprintf(c.App.Writer, `
%s

                  %s
                      %s
                            |
                            | has...
                            |
                  +-----------------+
                  |                 |
        %s       %s
         %s        %s
                  |                 |
                  | opens...        | is submitted to...
                  +-----------------+
                            |
                     %s
                       %s
                      /             \
                     /               \ results in...
                    /                 \
          %s            %s
          %s               %s

%s
  %s can be attached to %s, %s, %s, and most other records.
`,
		header("Bullhorn Core Entity Flowchart"),
		entity("[ ClientCorporation ]"),
		note("(The Company)"),
		entity("[ ClientContact ]"), entity("[ JobOrder ]"),
		note("(Contact Person)"), note("(Job Opening)"),
		entity("[ JobSubmission ]"),
		note("(Application)"),
		entity("[ Candidate ]"), entity("[ Placement ]"),
		note("(The Person)"), note("(A Hire)"),
		header("Commonly Associated Entities:"),
		entity("[ Note ]"), entity("[ Candidate ]"), entity("[ JobOrder ]"), entity("[ ClientContact ]"),
	)
	return nil
}
