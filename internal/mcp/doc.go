// Package mcp provides a Model Context Protocol (MCP) server for toolbox using mcp-go.
//
// The server lets AI assistants browse the same catalog and favorites as the
// TUI. It communicates via stdin/stdout using JSON-RPC 2.0.
//
// # Tools
//
//   - list_tools: category, tag, favorites_only and sort arguments, the same
//     filters the sidebar offers
//   - search_tools: the palette search, including its "kind" so clients can
//     tell suggestions, matches and an empty result apart
//   - toggle_favorite: flips one tool in the favorites and saves immediately
//
// The catalog is read-only. Favorites are shared with the TUI through the
// state file: every call re-reads it, so favorites saved by a TUI running
// alongside show up here and are kept when this server toggles one.
//
// # Usage
//
//	toolbox mcp
//
// The server will read JSON-RPC requests from stdin and write responses to
// stdout until it receives EOF or is terminated.
//
// # References
//
// - MCP Specification: https://modelcontextprotocol.io/specification
// - mcp-go Library: https://github.com/mark3labs/mcp-go
package mcp
