package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/namecheck-ai/namecheck/internal/core"
	"github.com/namecheck-ai/namecheck/internal/usecase"
)

func TestOutputWithoutColors(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriterOutput(&buf)

	out.PrintSuccess("%d done", 3)
	out.PrintWarning("careful")
	out.PrintError("broken: %s", "x")

	assert.Equal(t, "  ✓ 3 done\n  ⚠ careful\n  ✗ broken: x\n", buf.String())
}

func TestOutputDisableColors(t *testing.T) {
	var buf bytes.Buffer
	out := &Output{out: &buf, errOut: &buf, enableColors: true}

	assert.Equal(t, "\033[32mok\033[0m", out.Green("ok"))

	out.DisableColors()
	assert.Equal(t, "ok", out.Green("ok"))
	assert.Equal(t, "ok", out.Gray("ok"))
}

func TestOutputPrintStep(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriterOutput(&buf)

	out.PrintStep("", "Writing %d sections to %s", 7, "dist")
	out.PrintStep("→", "done")

	assert.Equal(t, "  Writing 7 sections to dist\n  → done\n", buf.String())
}

func TestExportReportSuccess(t *testing.T) {
	var buf bytes.Buffer
	report := NewExportReport(NewWriterOutput(&buf), "dist")

	report.Render(usecase.ExportOutput{Pages: []usecase.ExportedPage{
		{Section: core.SectionHomepage, Path: "dist/index.html", Size: 2048, PosterFound: true},
		{Section: core.SectionFAQ, Path: "dist/faq/index.html", Size: 100},
	}})

	got := buf.String()
	assert.Contains(t, got, "✓ 2 pages exported")
	assert.Contains(t, got, "index.html (2.0 kB)")
	assert.Contains(t, got, "faq/index.html (100 B)")
	assert.NotContains(t, got, "Poster not found")
	assert.Contains(t, got, "Output: dist")
}

func TestExportReportMissingPoster(t *testing.T) {
	var buf bytes.Buffer
	report := NewExportReport(NewWriterOutput(&buf), "dist")

	report.Render(usecase.ExportOutput{Pages: []usecase.ExportedPage{
		{Section: core.SectionHomepage, Path: "dist/index.html", Size: 10},
	}})

	assert.Contains(t, buf.String(), "Poster not found")
}

func TestExportReportFailure(t *testing.T) {
	var buf bytes.Buffer
	report := NewExportReport(NewWriterOutput(&buf), "dist")

	report.Render(usecase.ExportOutput{Error: errors.New("disk full")})

	assert.Contains(t, buf.String(), "Export failed")
	assert.Contains(t, buf.String(), "disk full")
	assert.NotContains(t, buf.String(), "pages exported")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", formatDuration(1500*time.Millisecond))
}
