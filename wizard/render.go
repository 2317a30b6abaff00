package wizard

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/matt-FFFFFF/mcpwizard/catalog"
	"github.com/matt-FFFFFF/mcpwizard/openapi"
)

const frameWidth = 63

var (
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	white  = color.New(color.FgWhite)
	bold   = color.New(color.FgWhite, color.Bold)
	gray   = color.New(color.FgHiBlack)
	dim    = color.New(color.Faint)
)

// bannerStyle is a double-line frame frameWidth columns wide inside the border.
var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Width(frameWidth).
	PaddingLeft(2)

// Banner frames each line in a double-line box. Width is measured in
// terminal cells, so emoji and other wide glyphs keep the frame aligned.
func Banner(lines ...string) string {
	return "\n" + bannerStyle.Render(strings.Join(lines, "\n")) + "\n\n"
}

// riskWarnings are shown before the user may opt in to automatic conversion.
var riskWarnings = []struct {
	title   string
	details []string
}{
	{
		title: "ALL endpoints from the OpenAPI spec become MCP tools",
		details: []string{
			"If you have DELETE /users/{id}, the AI client will be able to delete users!",
			"Review the spec and remove sensitive endpoints BEFORE generating",
		},
	},
	{
		title: "Authentication is YOUR responsibility",
		details: []string{
			"You have to configure API keys/tokens correctly",
			"Never deploy without auth for production APIs",
		},
	},
	{
		title: "The generated code MUST be reviewed",
		details: []string{
			"Don't deploy it blindly",
			"Check which tools were created",
			"Test with MCP Inspector before production",
		},
	},
	{
		title: "Not everything is supported",
		details: []string{
			"File uploads may not work",
			"WebSockets are not supported",
			"Complex schemas may cause problems",
		},
	},
}

// RenderRiskWarnings prints the four numbered risk categories of automatic conversion.
func RenderRiskWarnings(w io.Writer) {
	red.Fprint(w, Banner("⚠️  IMPORTANT WARNINGS for openapi-to-mcpserver"))
	for i, risk := range riskWarnings {
		yellow.Fprintf(w, "%d. %s\n", i+1, risk.title)
		for _, d := range risk.details {
			yellow.Fprintf(w, "   → %s\n", d)
		}
		fmt.Fprintln(w)
	}
}

// RenderExposure lists the operations of the user's spec that would become tools.
func RenderExposure(w io.Writer, ops []openapi.Operation) {
	s := openapi.Summarize(ops)
	yellow.Fprintf(w, "Your spec would expose %d operations as MCP tools (%d mutating, %d DELETE):\n", s.Total, s.Mutating, s.Delete)
	for _, op := range ops {
		line := fmt.Sprintf("   %-7s %s", op.Method, op.Path)
		if op.OperationID != "" {
			line += "  (" + op.OperationID + ")"
		}
		if op.Mutating {
			red.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}

// RenderTool prints the full catalog record for t.
func RenderTool(w io.Writer, t catalog.Tool) {
	cyan.Fprint(w, Banner("🏭 "+t.Name))

	white.Fprintln(w, t.Description)
	fmt.Fprintln(w)

	yellow.Fprintln(w, "Info:")
	fmt.Fprintf(w, "   Trust level: %s\n", trustLabel(t.TrustLevel))
	fmt.Fprintf(w, "   Production-ready: %s\n", yesNo(t.ProductionReady))
	fmt.Fprintln(w)

	green.Fprintln(w, "Good for:")
	for _, item := range t.BestFor {
		fmt.Fprintf(w, "   • %s\n", item)
	}
	fmt.Fprintln(w)

	red.Fprintln(w, "NOT a good fit for:")
	for _, item := range t.NotFor {
		fmt.Fprintf(w, "   • %s\n", item)
	}
	fmt.Fprintln(w)

	if len(t.Warnings) > 0 {
		yellow.Fprintln(w, "Warnings:")
		for _, item := range t.Warnings {
			fmt.Fprintf(w, "   ⚠ %s\n", item)
		}
		fmt.Fprintln(w)
	}

	cyan.Fprintln(w, "Install:")
	white.Fprintf(w, "   %s\n", t.Install)
	fmt.Fprintln(w)

	if t.Example != "" {
		cyan.Fprintln(w, "Example:")
		gray.Fprintln(w, indent(t.Example, "   "))
		fmt.Fprintln(w)
	}

	dim.Fprintf(w, "GitHub: %s\n", t.GitHub)
	if t.Docs != "" {
		dim.Fprintf(w, "Docs: %s\n", t.Docs)
	}
}

// RenderInstall prints the install command followed by the tool's hint.
func RenderInstall(w io.Writer, t catalog.Tool) {
	yellow.Fprint(w, "\nRun the following command:\n\n")
	bold.Fprintf(w, "   %s\n\n", t.Install)

	switch t.HintLevel {
	case catalog.HintWarning:
		yellow.Fprintf(w, "\n⚠ %s\n", t.Hint)
	default:
		dim.Fprintln(w, t.Hint)
	}
}

func trustLabel(l catalog.TrustLevel) string {
	switch l {
	case catalog.TrustHigh:
		return "High"
	case catalog.TrustMedium:
		return "Medium (needs attention)"
	}
	return string(l)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
