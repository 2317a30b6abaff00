// Package catalog holds the static metadata for the MCP server tools the wizard can recommend.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ToolID identifies a recommendable tool.
type ToolID string

const (
	FastMCP            ToolID = "fastmcp"
	GeneratorMCP       ToolID = "generator-mcp"
	OpenAPIToMCPServer ToolID = "openapi-to-mcpserver"
)

// KnownIDs lists every identifier the wizard can resolve to, in display order.
var KnownIDs = []ToolID{FastMCP, GeneratorMCP, OpenAPIToMCPServer}

// TrustLevel says how much manual review a tool's output needs before production use.
type TrustLevel string

const (
	TrustHigh   TrustLevel = "high"
	TrustMedium TrustLevel = "medium"
)

// HintLevel controls how the post-install hint is highlighted.
type HintLevel string

const (
	HintInfo    HintLevel = "info"
	HintWarning HintLevel = "warning"
)

// ErrUnknownTool is returned when a tool ID has no catalog entry.
var ErrUnknownTool = errors.New("unknown tool")

// Tool is a single catalog entry.
type Tool struct {
	ID              ToolID     `yaml:"id"`
	Name            string     `yaml:"name"`
	Description     string     `yaml:"description"`
	Install         string     `yaml:"install"`
	Docs            string     `yaml:"docs,omitempty"`
	GitHub          string     `yaml:"github"`
	TrustLevel      TrustLevel `yaml:"trust_level"`
	ProductionReady bool       `yaml:"production_ready"`
	Example         string     `yaml:"example,omitempty"`
	BestFor         []string   `yaml:"best_for"`
	NotFor          []string   `yaml:"not_for"`
	Warnings        []string   `yaml:"warnings,omitempty"`
	Hint            string     `yaml:"hint"`
	HintLevel       HintLevel  `yaml:"hint_level"`
}

type document struct {
	Tools []Tool `yaml:"tools"`
}

// Catalog is an immutable set of tools keyed by ID.
type Catalog struct {
	tools map[ToolID]Tool
}

//go:embed tools.yaml
var embedded []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded tools.yaml.
// A malformed embedded document is a build defect, so it panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(embedded))
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded tools.yaml is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes a catalog document and checks that it covers every known tool ID.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog document is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{tools: make(map[ToolID]Tool, len(doc.Tools))}
	for i, t := range doc.Tools {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("tool %d (%q): %w", i, t.ID, err)
		}
		if _, dup := c.tools[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %q", t.ID)
		}
		c.tools[t.ID] = t
	}

	var missing []string
	for _, id := range KnownIDs {
		if _, ok := c.tools[id]; !ok {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog is missing tools: %s", strings.Join(missing, ", "))
	}

	return c, nil
}

func (t Tool) validate() error {
	required := []struct {
		field, value string
	}{
		{"id", string(t.ID)},
		{"name", t.Name},
		{"description", t.Description},
		{"install", t.Install},
		{"github", t.GitHub},
		{"hint", t.Hint},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.field)
		}
	}

	switch t.TrustLevel {
	case TrustHigh, TrustMedium:
	default:
		return fmt.Errorf("invalid trust_level %q (want high or medium)", t.TrustLevel)
	}

	switch t.HintLevel {
	case HintInfo, HintWarning:
	default:
		return fmt.Errorf("invalid hint_level %q (want info or warning)", t.HintLevel)
	}

	if len(t.BestFor) == 0 {
		return errors.New("best_for must not be empty")
	}
	if len(t.NotFor) == 0 {
		return errors.New("not_for must not be empty")
	}
	return nil
}

// Lookup returns a copy of the tool with the given ID.
func (c *Catalog) Lookup(id ToolID) (Tool, bool) {
	t, ok := c.tools[id]
	if !ok {
		return Tool{}, false
	}
	return t.clone(), true
}

// Get is like Lookup but reports a missing ID as ErrUnknownTool.
func (c *Catalog) Get(id ToolID) (Tool, error) {
	t, ok := c.Lookup(id)
	if !ok {
		return Tool{}, fmt.Errorf("%w %q (valid: %s)", ErrUnknownTool, id, strings.Join(c.idStrings(), ", "))
	}
	return t, nil
}

// IDs returns the catalog's tool IDs, known IDs first in display order.
func (c *Catalog) IDs() []ToolID {
	ids := make([]ToolID, 0, len(c.tools))
	seen := make(map[ToolID]bool, len(c.tools))
	for _, id := range KnownIDs {
		if _, ok := c.tools[id]; ok {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	var extra []ToolID
	for id := range c.tools {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(ids, extra...)
}

// Tools returns copies of every tool in IDs order.
func (c *Catalog) Tools() []Tool {
	ids := c.IDs()
	out := make([]Tool, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.tools[id].clone())
	}
	return out
}

func (c *Catalog) idStrings() []string {
	ids := c.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func (t Tool) clone() Tool {
	t.BestFor = append([]string(nil), t.BestFor...)
	t.NotFor = append([]string(nil), t.NotFor...)
	t.Warnings = append([]string(nil), t.Warnings...)
	return t
}
