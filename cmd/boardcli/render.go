package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Width(12).Align(lipgloss.Center)
	rowStyle    = lipgloss.NewStyle().Width(18)
	cellStyle   = lipgloss.NewStyle().Width(12).Align(lipgloss.Center)

	teamStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // blue
	}
	contestedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

func renderBoard(board *boardData) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Codegolf Live"))
	b.WriteString("\n\n")

	b.WriteString(rowStyle.Render(""))
	for _, lang := range board.Languages {
		b.WriteString(headerStyle.Render(lang))
	}
	b.WriteString("\n")

	for i, ruleset := range board.Rulesets {
		label := ruleset
		if board.Pars[i] != nil {
			label = fmt.Sprintf("%s (Par %d)", ruleset, *board.Pars[i])
		}
		b.WriteString(rowStyle.Render(label))
		for _, cell := range board.Cells[i] {
			b.WriteString(renderCell(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, team := range board.Teams {
		style := contestedStyle
		if i < len(teamStyles) {
			style = teamStyles[i]
		}
		score := board.Scores[i]
		b.WriteString(style.Render(fmt.Sprintf("%s: %d lines", team, score.Lines)))
		b.WriteString(fmt.Sprintf(" (solves: %d, owners: %d)  ", score.Solves, score.Owners))
	}
	b.WriteString("\n")

	return b.String()
}

func renderCell(cell boardCell) string {
	text := "-"
	if cell.Score != nil {
		text = fmt.Sprintf("%d", *cell.Score)
	}

	switch {
	case len(cell.Owners) == 1 && cell.Owners[0] < len(teamStyles):
		return cellStyle.Inherit(teamStyles[cell.Owners[0]]).Render(text)
	case len(cell.Owners) > 1:
		return cellStyle.Inherit(contestedStyle).Render(text)
	default:
		return cellStyle.Render(text)
	}
}
