// Package output renders CLI results as tables, key/value blocks or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	UpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	DownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)

func JSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func Table(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("│")
	table.SetColumnSeparator("│")
	table.SetRowSeparator("─")
	table.SetHeaderLine(true)
	table.SetTablePadding(" ")
	table.AppendBulk(rows)
	table.Render()
}

func KeyValue(w io.Writer, pairs [][]string) {
	maxKeyLen := 0
	for _, pair := range pairs {
		if len(pair[0]) > maxKeyLen {
			maxKeyLen = len(pair[0])
		}
	}

	for _, pair := range pairs {
		key := MutedStyle.Render(fmt.Sprintf("%-*s", maxKeyLen, pair[0]))
		value := ValueStyle.Render(pair[1])
		fmt.Fprintf(w, "%s  %s\n", key, value)
	}
}

func Header(w io.Writer, msg string) {
	fmt.Fprintln(w, HeaderStyle.Render(msg))
}

func Info(w io.Writer, msg string) {
	fmt.Fprintln(w, MutedStyle.Render(msg))
}

func Warning(w io.Writer, msg string) {
	fmt.Fprintln(w, WarningStyle.Render("⚠ ")+msg)
}

func Error(msg string) {
	fmt.Fprintln(os.Stderr, DownStyle.Render("✗ ")+msg)
}

// Change colors an already formatted change string by direction.
func Change(s string, up bool) string {
	if up {
		return UpStyle.Render(s)
	}
	return DownStyle.Render(s)
}

func FormatStatus(status string) string {
	switch status {
	case "completed", "filled":
		return UpStyle.Render(status)
	case "pending", "open", "partially_filled":
		return WarningStyle.Render(status)
	case "failed", "canceled":
		return DownStyle.Render(status)
	default:
		return status
	}
}
