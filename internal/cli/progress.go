package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
)

// Exported constants.
const (
	// ProgressBarWidth is the default width of progress bars
	ProgressBarWidth = 40
	// ProgressPercentageScale is the scale for percentage calculations (100 for percentages)
	ProgressPercentageScale = 100
)

// ProgressPrinter redraws a single progress line on a terminal.
type ProgressPrinter struct {
	out    io.Writer
	model  progress.Model
	colors bool
	drawn  bool
}

// NewProgressPrinter creates a printer writing to out. Without colors the bar is ASCII.
func NewProgressPrinter(out io.Writer, width int, colors bool) *ProgressPrinter {
	return &ProgressPrinter{
		out:    out,
		model:  NewProgressModel(width, colors),
		colors: colors,
	}
}

// Finish ends the progress line.
func (p *ProgressPrinter) Finish() {
	if p.drawn {
		_, _ = fmt.Fprintln(p.out)
		p.drawn = false
	}
}

// Update redraws the line for written of total bytes.
func (p *ProgressPrinter) Update(written, total int64, name string) {
	percent := 1.0
	if total > 0 {
		percent = min(float64(written)/float64(total), 1.0)
	}

	_, _ = fmt.Fprintf(p.out, "\r%s %s %s",
		RenderProgress(p.model, percent, p.colors), FormatBytes(written), name)
	p.drawn = true
}

// NewProgressModel creates a progress bar model with the specified width.
func NewProgressModel(width int, colors bool) progress.Model {
	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.Width = width
	progressBar.ShowPercentage = true

	if colors {
		progressBar.EmptyColor = dimColorCode
		progressBar.FullColor = accentColorCode
	}

	return progressBar
}

// RenderASCIIProgress renders a progress bar in ASCII format.
// percent should be between 0.0 and 1.0, width is the total width of the bar.
// Returns a string like: "[=========>          ] 45%"
func RenderASCIIProgress(percent float64, width int) string {
	pct := int(percent * ProgressPercentageScale)
	filled := int(percent * float64(width))

	var bar strings.Builder
	bar.WriteString("[")

	switch {
	case filled >= width:
		bar.WriteString(strings.Repeat("=", width))
	case percent > 0:
		equalsCount := max(0, filled-1)
		bar.WriteString(strings.Repeat("=", equalsCount))
		bar.WriteString(">")
		bar.WriteString(strings.Repeat(" ", width-equalsCount-1))
	default:
		bar.WriteString(strings.Repeat(" ", width))
	}

	bar.WriteString("]")

	return fmt.Sprintf("%s %d%%", bar.String(), pct)
}

// RenderProgress renders with the bubbles progress bar, or the ASCII fallback
// when colors are off.
func RenderProgress(model progress.Model, percent float64, colors bool) string {
	if !colors {
		return RenderASCIIProgress(percent, model.Width)
	}

	return model.ViewAs(percent)
}

// FormatBytes formats bytes into human-readable format (e.g., "1.5 MB")
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
