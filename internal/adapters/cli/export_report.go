package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/namecheck-ai/namecheck/internal/usecase"
)

// ExportReport summarizes a static export on the terminal.
type ExportReport struct {
	out       *Output
	startTime time.Time
	outputDir string
}

func NewExportReport(out *Output, outputDir string) *ExportReport {
	return &ExportReport{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) Render(result usecase.ExportOutput) {
	duration := time.Since(r.startTime)

	if result.Error != nil {
		r.out.PrintError("Export failed after %s", formatDuration(duration))
		r.out.PrintError("%s", result.Error)
		return
	}

	r.out.PrintSuccess("%d pages exported", len(result.Pages))
	for _, page := range result.Pages {
		r.out.PrintFile(fmt.Sprintf("%-12s %s (%s)", page.Section.Label(), r.relative(page.Path), formatSize(page.Size)))
	}

	if len(result.Pages) > 0 && !result.Pages[0].PosterFound {
		r.out.PrintWarning("Poster not found, homepage exported without download link")
	}

	r.out.PrintSuccess("Export complete in %s", formatDuration(duration))
	r.out.PrintDone("")
	r.out.PrintDone("  " + r.out.Gray("Output: "+r.outputDir))
}

func (r *ExportReport) relative(path string) string {
	rel, err := filepath.Rel(r.outputDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func formatSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f kB", float64(n)/1024)
}
