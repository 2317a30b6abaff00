// Package wizard walks the user through a short questionnaire and recommends
// a tool for building an MCP server.
package wizard

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/matt-FFFFFF/mcpwizard/catalog"
	"github.com/matt-FFFFFF/mcpwizard/openapi"
	"go.uber.org/zap"
)

// Language is the preferred implementation language.
type Language string

const (
	LanguagePython Language = "python"
	LanguageNodeJS Language = "nodejs"
	LanguageAny    Language = "any"
)

// ControlLevel is how much of the server code the user wants to write by hand.
type ControlLevel string

const (
	ControlFull     ControlLevel = "full"
	ControlScaffold ControlLevel = "scaffold"
)

// Prompt texts. Tests match on these to see which questions were asked.
const (
	PromptHasOpenAPI   = "Do you already have a REST API with OpenAPI/Swagger documentation?"
	PromptAutoConvert  = "Do you want to convert the OpenAPI spec into an MCP server automatically?"
	PromptConfirmRisk  = "Do you understand the risks and want to continue with openapi-to-mcpserver?"
	PromptLanguage     = "Which programming language do you prefer?"
	PromptControlLevel = "How much control do you want over the code?"
)

var languageOptions = []Option{
	{Label: "Python (recommended for MCP)", Value: string(LanguagePython)},
	{Label: "Node.js / TypeScript", Value: string(LanguageNodeJS)},
	{Label: "No preference", Value: string(LanguageAny)},
}

var controlOptions = []Option{
	{Label: "Full control - I want to write all the logic myself", Value: string(ControlFull)},
	{Label: "Fast start - give me a scaffold, I'll add the logic", Value: string(ControlScaffold)},
}

// Answers holds what the user said during one session.
type Answers struct {
	HasOpenAPI      bool
	WantAutoConvert bool
	RiskConfirmed   bool
	Language        Language
	// ControlLevel is collected but does not influence Decide.
	ControlLevel ControlLevel
}

// Recommendation is the outcome of Decide.
type Recommendation struct {
	Tool      catalog.ToolID
	Rationale string
}

// Decide maps answers to a tool. The converter wins only when the user has a
// spec, wants conversion and accepted the risks; otherwise the language decides.
func Decide(a Answers) Recommendation {
	if a.HasOpenAPI && a.WantAutoConvert && a.RiskConfirmed {
		return Recommendation{Tool: catalog.OpenAPIToMCPServer}
	}

	switch a.Language {
	case LanguagePython, LanguageAny:
		return Recommendation{
			Tool:      catalog.FastMCP,
			Rationale: "I recommend FastMCP - the best choice for most cases.",
		}
	default:
		return Recommendation{
			Tool:      catalog.GeneratorMCP,
			Rationale: "I recommend generator-mcp - a good choice for Node.js developers.",
		}
	}
}

// Result is the terminal state of a session.
type Result struct {
	Answers        Answers
	Recommendation Recommendation
	Tool           catalog.Tool
	InstallShown   bool
}

// Config wires a Wizard. Catalog and Logger default to catalog.Default and a no-op logger.
type Config struct {
	Prompter Prompter
	Out      io.Writer
	Catalog  *catalog.Catalog
	Logger   *zap.Logger
	// Exposure, when set, is printed after the risk warnings.
	Exposure []openapi.Operation
}

// Wizard runs one interactive session.
type Wizard struct {
	prompter Prompter
	out      io.Writer
	catalog  *catalog.Catalog
	logger   *zap.Logger
	exposure []openapi.Operation
}

// New creates a Wizard from cfg.
func New(cfg Config) *Wizard {
	w := &Wizard{
		prompter: cfg.Prompter,
		out:      cfg.Out,
		catalog:  cfg.Catalog,
		logger:   cfg.Logger,
		exposure: cfg.Exposure,
	}
	if w.catalog == nil {
		w.catalog = catalog.Default()
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}
	return w
}

// Run asks the questions, prints the recommended tool and optionally its
// install instructions. A prompt failure ends the session with that error.
func (w *Wizard) Run() (Result, error) {
	color.New(color.FgCyan).Fprint(w.out, Banner("🏭 MCP Server Creator Wizard", "I'll help you pick the right tool"))
	color.New(color.FgYellow).Fprintln(w.out, "I'll ask you a few questions to find the most suitable tool.")
	fmt.Fprintln(w.out)

	var a Answers
	var err error

	if a.HasOpenAPI, err = w.prompter.Confirm(PromptHasOpenAPI, false); err != nil {
		return Result{}, err
	}
	w.logger.Debug("answer", zap.String("question", "has_openapi"), zap.Bool("value", a.HasOpenAPI))

	if a.HasOpenAPI {
		if a.WantAutoConvert, err = w.prompter.Confirm(PromptAutoConvert, true); err != nil {
			return Result{}, err
		}
		w.logger.Debug("answer", zap.String("question", "auto_convert"), zap.Bool("value", a.WantAutoConvert))

		if a.WantAutoConvert {
			RenderRiskWarnings(w.out)
			if len(w.exposure) > 0 {
				RenderExposure(w.out, w.exposure)
			}

			if a.RiskConfirmed, err = w.prompter.Confirm(PromptConfirmRisk, false); err != nil {
				return Result{}, err
			}
			w.logger.Debug("answer", zap.String("question", "risk_confirmed"), zap.Bool("value", a.RiskConfirmed))

			if a.RiskConfirmed {
				return w.recommend(a, Decide(a))
			}
		}
	}

	lang, err := w.prompter.Select(PromptLanguage, languageOptions)
	if err != nil {
		return Result{}, err
	}
	a.Language = Language(lang)
	w.logger.Debug("answer", zap.String("question", "language"), zap.String("value", lang))

	control, err := w.prompter.Select(PromptControlLevel, controlOptions)
	if err != nil {
		return Result{}, err
	}
	a.ControlLevel = ControlLevel(control)
	w.logger.Debug("control level collected, not used for the recommendation", zap.String("value", control))

	rec := Decide(a)
	color.New(color.FgGreen).Fprintf(w.out, "\n✓ %s\n\n", rec.Rationale)

	return w.recommend(a, rec)
}

func (w *Wizard) recommend(a Answers, rec Recommendation) (Result, error) {
	tool, err := w.catalog.Get(rec.Tool)
	if err != nil {
		return Result{}, err
	}
	w.logger.Debug("recommendation", zap.String("tool", string(tool.ID)))

	RenderTool(w.out, tool)

	res := Result{Answers: a, Recommendation: rec, Tool: tool}
	showInstall, err := w.prompter.Confirm(fmt.Sprintf("Show installation instructions for %s?", tool.Name), true)
	if err != nil {
		return Result{}, err
	}
	if showInstall {
		RenderInstall(w.out, tool)
		res.InstallShown = true
	}
	fmt.Fprintln(w.out)

	return res, nil
}
