// Package search implements the command palette lookup: case-insensitive
// substring matching over a tool's name, description and category label.
package search

import (
	"strings"

	"toolbox/internal/catalog"
)

const (
	// MaxResults caps the matches returned for a non-empty query.
	MaxResults = 10
	// MaxSuggestions caps the popular tools shown for an empty query.
	MaxSuggestions = 8
)

// Kind tells the caller how to render a Result.
type Kind int

const (
	// KindIdle is the zero value: nothing has been searched yet.
	KindIdle Kind = iota
	// KindSuggestions means the query was empty and Tools holds popular picks.
	KindSuggestions
	KindMatches
	// KindNoResults means the query matched nothing. Tools is nil.
	KindNoResults
)

func (k Kind) String() string {
	switch k {
	case KindSuggestions:
		return "suggestions"
	case KindMatches:
		return "matches"
	case KindNoResults:
		return "no_results"
	default:
		return "idle"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Result struct {
	Kind  Kind           `json:"kind"`
	Query string         `json:"query"`
	Tools []catalog.Tool `json:"tools"`
}

// Empty reports whether the no-results state should be shown.
func (r Result) Empty() bool {
	return r.Kind == KindNoResults
}

// Search runs query against tools, keeping catalog order.
func Search(tools []catalog.Tool, query string) Result {
	if strings.TrimSpace(query) == "" {
		return Result{Kind: KindSuggestions, Query: query, Tools: suggestions(tools)}
	}

	// Padding is part of the needle; only a blank query is special.
	q := strings.ToLower(query)
	var out []catalog.Tool
	for _, t := range tools {
		if len(out) == MaxResults {
			break
		}
		if matches(t, q) {
			out = append(out, t)
		}
	}

	if len(out) == 0 {
		return Result{Kind: KindNoResults, Query: query}
	}
	return Result{Kind: KindMatches, Query: query, Tools: out}
}

func suggestions(tools []catalog.Tool) []catalog.Tool {
	out := make([]catalog.Tool, 0, MaxSuggestions)
	for _, t := range tools {
		if len(out) == MaxSuggestions {
			break
		}
		if t.Popular {
			out = append(out, t)
		}
	}
	return out
}

// q must already be lowercased. A category without a label is matched by its
// raw value, the same text rows display for it.
func matches(t catalog.Tool, q string) bool {
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.Category.Label()), q)
}
