package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Header describes the host and session the report was produced for.
type Header struct {
	Hostname string
	Platform string
	Kernel   string
	Interval time.Duration
	Started  time.Time
	Duration time.Duration
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
)

// Render writes the human-readable report to w.
func Render(w io.Writer, h Header, r Report) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pemon session report"))
	b.WriteString("\n")
	writeField(&b, "host", h.Hostname)
	writeField(&b, "platform", h.Platform)
	writeField(&b, "kernel", h.Kernel)
	if !h.Started.IsZero() {
		writeField(&b, "started", h.Started.Format(time.RFC3339))
	}
	if h.Duration > 0 {
		writeField(&b, "duration", h.Duration.Round(time.Second).String())
	}
	if h.Interval > 0 {
		writeField(&b, "interval", h.Interval.String())
	}
	writeField(&b, "cores", strconv.Itoa(r.Cores))
	writeField(&b, "samples", strconv.Itoa(r.Samples))

	b.WriteString("\n")
	b.WriteString(overview(r).Render())
	b.WriteString("\n")

	for _, m := range r.Metrics {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", m.Name, m.Unit)))
		b.WriteString("\n")
		b.WriteString(distribution(m).Render())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}

	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label+":")), value)
}

func overview(r Report) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("metric", "unit", "mean", "min", "max")

	for _, m := range r.Metrics {
		t.Row(m.Name, m.Unit, formatValue(m.Mean), formatValue(m.Min), formatValue(m.Max))
	}

	return t
}

func distribution(m Summary) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("range", "samples", "share")

	for _, b := range m.Buckets {
		t.Row(b.Label, strconv.Itoa(b.Count), strconv.FormatFloat(b.Percent, 'f', 1, 64)+"%")
	}

	return t
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
