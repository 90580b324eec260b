package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"toolbox/internal/catalog"
	"toolbox/internal/filter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
)

const descriptionWidth = 48

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	favoriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printToolTable renders tools one per row in the order given.
func printToolTable(w io.Writer, tools []catalog.Tool, favorites filter.FavoriteSet) {
	rows := make([][]string, 0, len(tools))
	for _, t := range tools {
		name := t.Name
		if favorites != nil && favorites.Has(t.ID) {
			name += " " + favoriteStyle.Render("★")
		}
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			strings.TrimSpace(t.Emoji + " " + name),
			t.Category.Label(),
			tagLabels(t.Tags),
			truncate.StringWithTail(t.Description, descriptionWidth, "…"),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("ID", "TOOL", "CATEGORY", "TAGS", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, tbl.Render())
}

func tagLabels(tags []catalog.Tag) string {
	labels := make([]string, len(tags))
	for i, tag := range tags {
		labels[i] = tag.Label()
	}
	return strings.Join(labels, ", ")
}
