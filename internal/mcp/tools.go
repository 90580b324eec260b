package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"toolbox/internal/catalog"
	"toolbox/internal/filter"
	"toolbox/internal/search"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToolEntry is a catalog tool as returned to MCP clients.
type ToolEntry struct {
	catalog.Tool
	CategoryLabel string `json:"categoryLabel"`
	Favorite      bool   `json:"favorite"`
}

type ListResponse struct {
	Count int         `json:"count"`
	Tools []ToolEntry `json:"tools"`
}

type SearchResponse struct {
	Kind  search.Kind `json:"kind"`
	Query string      `json:"query"`
	Tools []ToolEntry `json:"tools"`
}

type ToggleResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Favorite bool   `json:"favorite"`
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_tools",
		mcp.WithDescription("List catalog tools, optionally filtered by category, pricing tag or favorites, in the requested order."),
		mcp.WithString("category", mcp.Description("Category id such as design or dev; omit or use all for every category.")),
		mcp.WithString("tag", mcp.Description("Pricing tag: free, freemium or open-source.")),
		mcp.WithBoolean("favorites_only", mcp.Description("Only return the user's favorites.")),
		mcp.WithString("sort", mcp.Description("Ordering: default, name or popular."), mcp.Enum(sortModeNames()...)),
	), s.handleListTools)

	s.mcpServer.AddTool(mcp.NewTool("search_tools",
		mcp.WithDescription(fmt.Sprintf("Case-insensitive substring search over name, description and category. Returns at most %d matches; an empty query returns up to %d popular tools.", search.MaxResults, search.MaxSuggestions)),
		mcp.WithString("query", mcp.Description("Text to look for.")),
	), s.handleSearchTools)

	s.mcpServer.AddTool(mcp.NewTool("toggle_favorite",
		mcp.WithDescription("Add a tool to the user's favorites, or remove it if it is already there."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Catalog id of the tool.")),
	), s.handleToggleFavorite)
}

func (s *Server) handleListTools(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sortMode, err := filter.ParseSortMode(req.GetString("sort", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	st := filter.State{
		Category:      catalog.ParseCategory(req.GetString("category", "")),
		Tag:           catalog.Tag(req.GetString("tag", "")),
		FavoritesOnly: req.GetBool("favorites_only", false),
		Sort:          sortMode,
	}

	s.mu.Lock()
	s.prefs.ReloadFavorites()
	tools := filter.Apply(s.catalog.Tools(), st, s.prefs)
	entries := s.entries(tools)
	s.mu.Unlock()

	s.logger.Debug("list_tools", "category", st.Category, "tag", st.Tag, "favorites_only", st.FavoritesOnly, "sort", st.Sort, "count", len(entries))
	return jsonResult(ListResponse{Count: len(entries), Tools: entries})
}

func (s *Server) handleSearchTools(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	r := search.Search(s.catalog.Tools(), query)

	s.mu.Lock()
	s.prefs.ReloadFavorites()
	entries := s.entries(r.Tools)
	s.mu.Unlock()

	s.logger.Debug("search_tools", "query", query, "kind", r.Kind, "count", len(entries))
	return jsonResult(SearchResponse{Kind: r.Kind, Query: query, Tools: entries})
}

func (s *Server) handleToggleFavorite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := toolID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tool, ok := s.catalog.ByID(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no tool with id %d", id)), nil
	}

	s.mu.Lock()
	now, err := s.prefs.ToggleFavorite(id)
	s.mu.Unlock()

	s.logger.LogUserAction("mcp_toggle_favorite", fmt.Sprintf("id=%d favorite=%t", id, now))
	if err != nil {
		s.logger.Error("Favorite not saved", "id", id, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("favorite changed for this session but not saved: %v", err)), nil
	}

	return jsonResult(ToggleResponse{ID: id, Name: tool.Name, Favorite: now})
}

func sortModeNames() []string {
	modes := filter.SortModes()
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = string(m)
	}
	return out
}

// toolID reads the id argument. JSON numbers arrive as float64, and a
// fractional id must not be truncated onto a neighbouring tool.
func toolID(req mcp.CallToolRequest) (int, error) {
	f, err := req.RequireFloat("id")
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("argument \"id\" must be a whole number, got %v", f)
	}
	return int(f), nil
}

// entries must be called with s.mu held.
func (s *Server) entries(tools []catalog.Tool) []ToolEntry {
	return NewToolEntries(tools, s.prefs)
}

// NewToolEntries decorates tools with their category label and favorite flag.
// The result is never nil so it encodes as an empty JSON array.
func NewToolEntries(tools []catalog.Tool, favorites filter.FavoriteSet) []ToolEntry {
	out := make([]ToolEntry, len(tools))
	for i, t := range tools {
		out[i] = ToolEntry{
			Tool:          t,
			CategoryLabel: t.Category.Label(),
			Favorite:      favorites != nil && favorites.Has(t.ID),
		}
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
