package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"voice-task-manager/pkg/categorize"
	"voice-task-manager/pkg/taskparse"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	whenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	tagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))

	confidenceStyles = map[categorize.Confidence]lipgloss.Style{
		categorize.ConfidenceHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		categorize.ConfidenceMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		categorize.ConfidenceLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

func renderTasks(w io.Writer, tasks []taskparse.ParsedTask) {
	for i, t := range tasks {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render(fmt.Sprintf("%d.", i+1)), nameStyle.Render(t.TaskName))
		if when := formatWhen(t); when != "" {
			fmt.Fprintf(w, "   %s\n", whenStyle.Render(when))
		}
		if len(t.Tags) > 0 {
			tags := make([]string, len(t.Tags))
			for j, tag := range t.Tags {
				tags[j] = "#" + tag
			}
			fmt.Fprintf(w, "   %s\n", tagStyle.Render(strings.Join(tags, " ")))
		}
		fmt.Fprintf(w, "   %s\n", dimStyle.Render(t.Description))
	}
}

func formatWhen(t taskparse.ParsedTask) string {
	var parts []string
	if t.Date != nil {
		parts = append(parts, *t.Date)
	}
	if t.Time != nil {
		parts = append(parts, *t.Time)
	}
	return strings.Join(parts, " ")
}

func renderCategory(w io.Writer, r categorize.Result) {
	style, ok := confidenceStyles[r.Confidence]
	if !ok {
		style = lipgloss.NewStyle()
	}
	fmt.Fprintf(w, "%s %s\n", nameStyle.Render(r.SuggestedCategory), style.Render("("+string(r.Confidence)+")"))
}
