package main

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/mcpwizard/catalog"
	"github.com/matt-FFFFFF/mcpwizard/wizard"
	"github.com/urfave/cli/v3"
)

func ToolsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "Inspect the tools the wizard can recommend",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every tool with its trust level",
				Action: runToolsList,
			},
			{
				Name:      "show",
				Usage:     "Print the full record for a tool",
				ArgsUsage: "<id>",
				Action:    runToolsShow,
			},
		},
	}
}

func runToolsList(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	for _, t := range catalog.Default().Tools() {
		fmt.Fprintf(out, "%-22s %-24s %s\n", t.ID, t.Name, t.TrustLevel)
	}
	return nil
}

func runToolsShow(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return cli.ShowSubcommandHelp(cmd)
	}
	applyColor(cmd)

	tool, err := catalog.Default().Get(catalog.ToolID(cmd.Args().First()))
	if err != nil {
		return err
	}
	wizard.RenderTool(cmd.Root().Writer, tool)
	return nil
}
