package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"toolbox/internal/config"
	"toolbox/internal/logging"
	mcpserver "toolbox/internal/mcp"
	"toolbox/internal/prefs"
	"toolbox/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	dir       string
	statePath string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.ConfigPathEnv, filepath.Join(dir, "missing-config.yaml"))
	return cliEnv{dir: dir, statePath: filepath.Join(dir, "state", "state.yaml")}
}

func (e cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCommand(cliOptions{
		logger:      logging.NewNopLogger(),
		systemTheme: prefs.NoSystemTheme,
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--state", e.statePath))

	err := root.Execute()
	return out.String(), err
}

func (e cliEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, "toolbox %v", args)
	return out
}

func listJSON(t *testing.T, e cliEnv, args ...string) mcpserver.ListResponse {
	t.Helper()
	var resp mcpserver.ListResponse
	out := e.mustRun(t, append([]string{"list", "--json"}, args...)...)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

func entryNames(entries []mcpserver.ToolEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestList_JSON(t *testing.T) {
	e := newCLIEnv(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"category", []string{"--category", "design"}, []string{"Canva", "Figma", "Photopea", "Inkscape"}},
		{"category and tag", []string{"--category", "design", "--tag", "free"}, []string{"Photopea", "Inkscape"}},
		{"sort by name", []string{"--category", "design", "--sort", "name"}, []string{"Canva", "Figma", "Inkscape", "Photopea"}},
		{"favorites with none saved", []string{"--favorites"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := listJSON(t, e, tt.args...)
			assert.Equal(t, tt.want, entryNames(resp.Tools))
			assert.Equal(t, len(tt.want), resp.Count)
		})
	}

	all := listJSON(t, e)
	assert.Equal(t, 32, all.Count)
	assert.Equal(t, "ChatGPT", all.Tools[0].Name)
}

func TestList_Table(t *testing.T) {
	e := newCLIEnv(t)

	out := e.mustRun(t, "list", "--category", "pdf")
	assert.Contains(t, out, "iLovePDF")
	assert.Contains(t, out, "Stirling PDF")
	assert.Contains(t, out, "PDF & Documents")
	assert.Contains(t, out, "3 tools")
	assert.NotContains(t, out, "Figma")

	out = e.mustRun(t, "list", "--favorites")
	assert.Contains(t, out, "No favorites yet")
}

func TestList_InvalidFlags(t *testing.T) {
	e := newCLIEnv(t)

	_, err := e.run(t, "list", "--sort", "newest")
	assert.Error(t, err)

	_, err = e.run(t, "list", "--tag", "paid")
	assert.ErrorContains(t, err, "unknown tag")
}

func TestList_SortCompletion(t *testing.T) {
	newCLIEnv(t)

	root := newRootCommand(cliOptions{logger: logging.NewNopLogger(), systemTheme: prefs.NoSystemTheme})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"__complete", "list", "--sort", ""})
	require.NoError(t, root.Execute())

	for _, want := range []string{"default", "name", "popular"} {
		assert.Contains(t, out.String(), want+"\n")
	}
}

func TestSearch(t *testing.T) {
	e := newCLIEnv(t)

	out := e.mustRun(t, "search", "figma")
	assert.Contains(t, out, "Figma")

	out = e.mustRun(t, "search", "zzzz", "qqqq")
	assert.Contains(t, out, `No tools found for "zzzz qqqq"`)

	out = e.mustRun(t, "search")
	assert.Contains(t, out, "Popular tools")
	assert.Contains(t, out, "ChatGPT")
}

func TestSearch_JSON(t *testing.T) {
	e := newCLIEnv(t)

	var resp struct {
		Kind  string                `json:"kind"`
		Tools []mcpserver.ToolEntry `json:"tools"`
	}

	require.NoError(t, json.Unmarshal([]byte(e.mustRun(t, "search", "--json")), &resp))
	assert.Equal(t, "suggestions", resp.Kind)
	assert.Len(t, resp.Tools, search.MaxSuggestions)

	require.NoError(t, json.Unmarshal([]byte(e.mustRun(t, "search", "--json", "PDF")), &resp))
	assert.Equal(t, "matches", resp.Kind)
	assert.Contains(t, entryNames(resp.Tools), "Smallpdf")

	require.NoError(t, json.Unmarshal([]byte(e.mustRun(t, "search", "--json", "zzzz")), &resp))
	assert.Equal(t, "no_results", resp.Kind)
	assert.Empty(t, resp.Tools)
}

func TestFav_TogglesAndPersists(t *testing.T) {
	e := newCLIEnv(t)

	out := e.mustRun(t, "fav", "6")
	assert.Contains(t, out, "Added Figma to favorites")
	assert.FileExists(t, e.statePath)

	resp := listJSON(t, e, "--favorites")
	assert.Equal(t, []string{"Figma"}, entryNames(resp.Tools))
	assert.True(t, resp.Tools[0].Favorite)

	out = e.mustRun(t, "fav", "6")
	assert.Contains(t, out, "Removed Figma from favorites")
	assert.Empty(t, listJSON(t, e, "--favorites").Tools)
}

func TestFav_Errors(t *testing.T) {
	e := newCLIEnv(t)

	_, err := e.run(t, "fav", "abc")
	assert.ErrorContains(t, err, "invalid tool id")

	_, err = e.run(t, "fav", "999")
	assert.ErrorContains(t, err, "no tool with id 999")

	_, err = e.run(t, "fav")
	assert.Error(t, err)

	_, statErr := os.Stat(e.statePath)
	assert.True(t, os.IsNotExist(statErr), "failed commands should not create the state file")
}

func TestTheme(t *testing.T) {
	e := newCLIEnv(t)

	assert.Equal(t, "light\n", e.mustRun(t, "theme"))
	assert.Equal(t, "dark\n", e.mustRun(t, "theme", "dark"))
	assert.Equal(t, "dark\n", e.mustRun(t, "theme"))
	assert.Equal(t, "light\n", e.mustRun(t, "theme", "toggle"))

	_, err := e.run(t, "theme", "sepia")
	assert.ErrorIs(t, err, prefs.ErrInvalidTheme)
	assert.Equal(t, "light\n", e.mustRun(t, "theme"))
}

func TestCustomCatalog(t *testing.T) {
	e := newCLIEnv(t)

	path := filepath.Join(e.dir, "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: 100
  name: Zed
  description: fast editor
  category: dev
  tags: [free, open-source]
  url: https://zed.dev
  emoji: "⚡"
  popular: true
- id: 101
  name: Excalidraw
  description: whiteboard sketches
  category: design
  tags: [free]
  url: https://excalidraw.com
  emoji: "✏️"
`), 0o644))

	resp := listJSON(t, e, "--catalog", path)
	assert.Equal(t, []string{"Zed", "Excalidraw"}, entryNames(resp.Tools))

	_, err := e.run(t, "list", "--catalog", filepath.Join(e.dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to load catalog")
}

func TestConfigStatePath(t *testing.T) {
	e := newCLIEnv(t)

	custom := filepath.Join(e.dir, "custom", "prefs.yaml")
	cfg := config.DefaultConfig()
	cfg.StatePath = custom
	cfgPath := filepath.Join(e.dir, "config.yaml")
	require.NoError(t, cfg.SaveTo(cfgPath))

	// --state is always passed by run, so invoke the command directly here.
	root := newRootCommand(cliOptions{logger: logging.NewNopLogger(), systemTheme: prefs.NoSystemTheme})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"fav", "1", "--config", cfgPath})
	require.NoError(t, root.Execute())

	assert.FileExists(t, custom)
}
