// Package catalog holds the curated tool list browsed by toolbox.
//
// A Catalog is built once at startup, from the embedded tools.json or from a
// user supplied JSON/YAML file, and never changes afterwards. Its order is the
// order of the source file and is the default display order everywhere.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"toolbox/internal/validation"

	"gopkg.in/yaml.v3"
)

//go:embed tools.json
var embeddedTools []byte

var (
	// ErrDuplicateID is returned when two tools share an id.
	ErrDuplicateID = errors.New("duplicate tool id")
	// ErrUnsupportedFormat is returned for catalog files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrInvalidTool is returned when a catalog file entry has no name or an
	// unusable URL, and when any tool uses the reserved "all" category.
	ErrInvalidTool = errors.New("invalid tool")
)

// Tool is a single catalog entry. Values are treated as immutable.
type Tool struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Category     Category `json:"category" yaml:"category"`
	Tags         []Tag    `json:"tags" yaml:"tags"`
	URL          string   `json:"url" yaml:"url"`
	Emoji        string   `json:"emoji" yaml:"emoji"`
	Popular      bool     `json:"popular,omitempty" yaml:"popular,omitempty"`
	EditorChoice bool     `json:"editorChoice,omitempty" yaml:"editorChoice,omitempty"`
}

// HasTag reports whether tag is attached to the tool.
func (t Tool) HasTag(tag Tag) bool {
	for _, tt := range t.Tags {
		if tt == tag {
			return true
		}
	}
	return false
}

// Catalog is an ordered, read-only set of tools with unique ids.
type Catalog struct {
	tools  []Tool
	index  map[int]int
	counts map[Category]int
}

// New builds a catalog from tools, preserving their order. The slice is
// copied, including each tool's tag slice.
func New(tools []Tool) (*Catalog, error) {
	c := &Catalog{
		tools:  make([]Tool, 0, len(tools)),
		index:  make(map[int]int, len(tools)),
		counts: map[Category]int{CategoryAll: len(tools)},
	}

	for _, t := range tools {
		if _, dup := c.index[t.ID]; dup {
			return nil, fmt.Errorf("%w: %d (%s)", ErrDuplicateID, t.ID, t.Name)
		}
		if t.Category == CategoryAll {
			return nil, fmt.Errorf("%w: %s (id %d): category %q is reserved", ErrInvalidTool, t.Name, t.ID, CategoryAll)
		}
		if len(t.Tags) > 0 {
			t.Tags = append([]Tag(nil), t.Tags...)
		}
		c.index[t.ID] = len(c.tools)
		c.tools = append(c.tools, t)
		c.counts[t.Category]++
	}

	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	tools, err := Parse(embeddedTools, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	if err := checkTools(tools); err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return New(tools)
}

// Load reads a catalog file. The format follows the extension: .json, .yaml
// or .yml.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	tools, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := checkTools(tools); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return New(tools)
}

// checkTools validates entries coming from catalog files. New does not call
// it so tests and callers can build partial tools.
func checkTools(tools []Tool) error {
	for i, t := range tools {
		if err := validation.ValidateToolName(t.Name); err != nil {
			return fmt.Errorf("%w: entry %d (id %d): %v", ErrInvalidTool, i, t.ID, err)
		}
		if err := validation.ValidateToolURL(t.URL); err != nil {
			return fmt.Errorf("%w: %s (id %d): %v", ErrInvalidTool, t.Name, t.ID, err)
		}
	}
	return nil
}

// Parse decodes a list of tools. ext selects the decoder and is matched
// case-insensitively, with or without the leading dot.
func Parse(data []byte, ext string) ([]Tool, error) {
	var tools []Tool

	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "json":
		if err := json.Unmarshal(data, &tools); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &tools); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return tools, nil
}

// Tools returns the tools in catalog order. The returned slice is a copy.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

func (c *Catalog) Len() int {
	return len(c.tools)
}

// ByID looks a tool up by id.
func (c *Catalog) ByID(id int) (Tool, bool) {
	i, ok := c.index[id]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// CategoryCounts returns the number of tools per category, with CategoryAll
// holding the catalog size. Counts come from the full catalog and do not
// depend on any filter.
func (c *Catalog) CategoryCounts() map[Category]int {
	out := make(map[Category]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
