package wizard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/mcpwizard/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerWidth(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "ascii", lines: []string{"FastMCP", "second line"}},
		{name: "factory emoji", lines: []string{"🏭 FastMCP"}},
		{name: "warning sign", lines: []string{"⚠️  IMPORTANT WARNINGS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Banner(tt.lines...)
			rows := strings.Split(strings.Trim(b, "\n"), "\n")
			require.Len(t, rows, len(tt.lines)+2)

			assert.True(t, strings.HasPrefix(rows[0], "╔"))
			assert.True(t, strings.HasPrefix(rows[len(rows)-1], "╚"))
			for _, row := range rows {
				assert.Equal(t, frameWidth+2, lipgloss.Width(row), "row %q", row)
			}
			assert.True(t, strings.HasPrefix(rows[1], "║  "+tt.lines[0]))
			assert.True(t, strings.HasSuffix(rows[1], "║"))
		})
	}
}

func TestRenderToolOrder(t *testing.T) {
	tool, err := catalog.Default().Get(catalog.FastMCP)
	require.NoError(t, err)

	var out bytes.Buffer
	RenderTool(&out, tool)
	s := out.String()

	sections := []string{
		"║  🏭 FastMCP",
		tool.Description,
		"Info:",
		"Trust level: High",
		"Production-ready: Yes",
		"Good for:",
		"   • Production-ready MCP servers",
		"NOT a good fit for:",
		"   • If you don't know Python",
		"Install:",
		"   pip install fastmcp",
		"Example:",
		"   from fastmcp import FastMCP",
		"GitHub: https://github.com/jlowin/fastmcp",
		"Docs: https://gofastmcp.com/",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(s, section)
		require.GreaterOrEqual(t, idx, 0, "missing %q", section)
		assert.Greater(t, idx, last, "%q out of order", section)
		last = idx
	}
	assert.NotContains(t, s, "Warnings:")
}

func TestRenderToolOptionalFields(t *testing.T) {
	tool := catalog.Tool{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "d",
		Install:     "go install example.com/minimal@latest",
		GitHub:      "https://example.com/minimal",
		TrustLevel:  catalog.TrustMedium,
		BestFor:     []string{"a"},
		NotFor:      []string{"b"},
		Warnings:    []string{"careful"},
	}

	var out bytes.Buffer
	RenderTool(&out, tool)
	s := out.String()

	assert.Contains(t, s, "Production-ready: No")
	assert.Contains(t, s, "Warnings:\n   ⚠ careful")
	assert.NotContains(t, s, "Example:")
	assert.NotContains(t, s, "Docs:")
}

func TestRenderRiskWarnings(t *testing.T) {
	var out bytes.Buffer
	RenderRiskWarnings(&out)
	s := out.String()

	assert.Contains(t, s, "IMPORTANT WARNINGS for openapi-to-mcpserver")
	for i := 1; i <= 4; i++ {
		assert.Contains(t, s, string(rune('0'+i))+". ")
	}
	assert.Contains(t, s, "   → If you have DELETE /users/{id}")
}

func TestIndentSkipsBlankLines(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", indent("a\n\nb", "  "))
}
