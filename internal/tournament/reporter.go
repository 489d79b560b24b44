package tournament

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/dilemma/internal/fileutil"
)

// OutputFormat selects what the reporter emits.
type OutputFormat string

const (
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
	FormatBoth    OutputFormat = "both"
)

// Reporter renders tournament results as a human-readable summary, a JSON
// document, or both.
type Reporter struct {
	Format OutputFormat
	// File receives the JSON document instead of Out when set. The write
	// is atomic so a concurrent reader never sees a partial result.
	File string
	// Top limits how many standings entries the summary shows. 0 shows
	// all of them.
	Top int
	// Out defaults to stdout.
	Out io.Writer
}

// report is the persisted JSON shape.
type report struct {
	Tournament *Result    `json:"tournament"`
	Standings  []Standing `json:"standings"`
	Summary    Summary    `json:"summary"`
}

// Report renders the result in the configured format.
func (r *Reporter) Report(result *Result) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	standings := Standings(result)

	if r.Format == FormatJSON || r.Format == FormatBoth {
		data, err := json.MarshalIndent(report{
			Tournament: result,
			Standings:  standings,
			Summary:    Summarize(standings),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		if r.File != "" {
			if err := fileutil.WriteFileAtomic(r.File, data, 0644); err != nil {
				return fmt.Errorf("writing results to %s: %w", r.File, err)
			}
		} else if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return err
		}
	}

	if r.Format == FormatSummary || r.Format == FormatBoth {
		if _, err := fmt.Fprint(out, r.renderSummary(result, standings)); err != nil {
			return err
		}
	}

	return nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	columnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func (r *Reporter) renderSummary(result *Result, standings []Standing) string {
	var sb strings.Builder

	summary := Summarize(standings)

	sb.WriteString(headerStyle.Render("Tournament results"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Strategies: %d (code length %d)\n", result.Competitors, result.CodeLength)
	fmt.Fprintf(&sb, "Matches:    %d over %d rounds", len(result.Rows), result.Rounds)
	if result.Jitter > 0 {
		fmt.Fprintf(&sb, " (jitter ±%d, seed %d)", result.Jitter, result.Seed)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Elapsed:    %s\n", result.Elapsed)
	fmt.Fprintf(&sb, "Totals:     mean %.1f, stddev %.1f, range [%.0f, %.0f]\n\n",
		summary.Mean, summary.StdDev, summary.Min, summary.Max)

	top := r.Top
	if top <= 0 || top > len(standings) {
		top = len(standings)
	}

	sb.WriteString(columnStyle.Render(fmt.Sprintf("%-5s %-6s %-12s %12s %14s", "Rank", "Index", "Code", "Total", "Mean/round")))
	sb.WriteString("\n")
	for _, s := range standings[:top] {
		fmt.Fprintf(&sb, "%-5d %-6d %-12s %12.1f %14.4f\n",
			s.Rank, s.Index, s.Code, s.Total, s.MeanPerRound)
	}
	if top < len(standings) {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(standings)-top)))
		sb.WriteString("\n")
	}

	return sb.String()
}
