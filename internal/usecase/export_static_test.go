package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/namecheck-ai/namecheck/internal/adapters/fs"
	"github.com/namecheck-ai/namecheck/internal/content"
	"github.com/namecheck-ai/namecheck/internal/core"
)

func newExportService(t *testing.T, posterPath string) *ExportService {
	t.Helper()
	pc, err := content.Default()
	require.NoError(t, err)

	osfs := fs.NewOSFileSystem()
	opts := DefaultPageOptions()
	opts.PosterPath = posterPath

	pages := NewPageService(pc, osfs, nil, opts)
	return NewExportService(pages, osfs, nil)
}

func TestExportStaticWritesEverySection(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	poster := filepath.Join(dir, "Report.pdf")
	require.NoError(t, os.WriteFile(poster, posterBytes, 0o644))

	out := filepath.Join(dir, "dist")
	svc := newExportService(t, poster)

	res := svc.ExportStatic(context.Background(), ExportInput{OutDir: out, Concurrency: 2})
	require.NoError(t, res.Error)
	require.Len(t, res.Pages, len(core.Sections()))

	for i, section := range core.Sections() {
		page := res.Pages[i]
		assert.Equal(t, section, page.Section)
		assert.Equal(t, filepath.Join(out, core.ExportPath(section)), page.Path)
		assert.Equal(t, section == core.SectionHomepage, page.PosterFound)

		data, err := os.ReadFile(page.Path)
		require.NoError(t, err)
		assert.Len(t, data, page.Size)
		assert.Contains(t, string(data), `value="`+section.Label()+`" checked`)
	}

	home, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), `data-href="./about/"`)
	assert.NotContains(t, string(home), `data-href="/`)
	faq, err := os.ReadFile(filepath.Join(out, "faq", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(faq), `data-href="../"`)
	assert.Contains(t, string(faq), `data-href="../contact/"`)
}

func TestExportStaticWithoutPoster(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	svc := newExportService(t, filepath.Join(dir, "missing.pdf"))

	res := svc.ExportStatic(context.Background(), ExportInput{OutDir: dir})
	require.NoError(t, res.Error)

	home, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(home), "download=")
	assert.False(t, res.Pages[0].PosterFound)
}

func TestExportStaticRequiresOutDir(t *testing.T) {
	svc := newExportService(t, "Report.pdf")

	res := svc.ExportStatic(context.Background(), ExportInput{})
	assert.Error(t, res.Error)
	assert.Empty(t, res.Pages)
}

func TestExportStaticCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newExportService(t, "Report.pdf")
	res := svc.ExportStatic(ctx, ExportInput{OutDir: t.TempDir()})
	assert.ErrorIs(t, res.Error, context.Canceled)
}
