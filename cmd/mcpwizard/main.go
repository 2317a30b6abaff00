package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/matt-FFFFFF/mcpwizard/openapi"
	"github.com/matt-FFFFFF/mcpwizard/wizard"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := RootCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func RootCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcpwizard",
		Usage: "Pick the right tool for building an MCP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "spec",
				Usage:   "Optional: path or URL to your OpenAPI spec, used to preview which operations would become tools",
				Sources: cli.EnvVars("MCPWIZARD_SPEC"),
			},
			&cli.BoolFlag{
				Name:    "accessible",
				Usage:   "Ask questions as plain lines instead of the interactive terminal UI",
				Sources: cli.EnvVars("MCPWIZARD_ACCESSIBLE"),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured output",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Write debug logs to stderr",
				Sources: cli.EnvVars("MCPWIZARD_DEBUG"),
			},
		},
		Action: runWizard,
		Commands: []*cli.Command{
			ToolsCommand(),
		},
	}
}

func runWizard(ctx context.Context, cmd *cli.Command) error {
	applyColor(cmd)

	logger, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var exposure []openapi.Operation
	if specPath := cmd.String("spec"); specPath != "" {
		doc, err := openapi.LoadSpec(specPath)
		if err != nil {
			return fmt.Errorf("failed to load spec: %w", err)
		}
		exposure = openapi.ExposedOperations(doc)
		logger.Debug("loaded spec for exposure preview",
			zap.String("spec", specPath),
			zap.Int("operations", len(exposure)))
	}

	root := cmd.Root()
	w := wizard.New(wizard.Config{
		Prompter: wizard.NewFormPrompter(root.Reader, root.Writer, cmd.Bool("accessible") || !isTerminal(root.Reader)),
		Out:      root.Writer,
		Logger:   logger,
		Exposure: exposure,
	})

	res, err := w.Run()
	if err != nil {
		return fmt.Errorf("wizard aborted: %w", err)
	}
	logger.Debug("session finished",
		zap.String("tool", string(res.Tool.ID)),
		zap.Bool("install_shown", res.InstallShown))
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// isTerminal reports whether r is an interactive terminal the form UI can drive.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func applyColor(cmd *cli.Command) {
	if cmd.Bool("no-color") {
		color.NoColor = true
	}
}
