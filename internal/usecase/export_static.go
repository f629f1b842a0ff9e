package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/namecheck-ai/namecheck/internal/core"
)

const defaultExportConcurrency = 4

type ExportInput struct {
	OutDir      string
	Concurrency int
}

type ExportOutput struct {
	Pages []ExportedPage
	Error error
}

type ExportedPage struct {
	Section     core.Section
	Path        string
	Size        int
	PosterFound bool
}

type ExportService struct {
	pages  *PageService
	fs     FileSystem
	logger *zap.Logger
}

func NewExportService(pages *PageService, fs FileSystem, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		pages:  pages,
		fs:     fs,
		logger: logger,
	}
}

// ExportStatic writes every section to OutDir: the default section as
// index.html, the others as <slug>/index.html.
func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("missing output directory")}
	}

	limit := input.Concurrency
	if limit <= 0 {
		limit = defaultExportConcurrency
	}

	sections := core.Sections()
	pages := make([]ExportedPage, len(sections))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, section := range sections {
		eg.Go(func() error {
			page, err := s.exportSection(ctx, input.OutDir, section)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return ExportOutput{Error: err}
	}

	return ExportOutput{Pages: pages}
}

func (s *ExportService) exportSection(ctx context.Context, outDir string, section core.Section) (ExportedPage, error) {
	out := s.pages.ServePage(ctx, ServePageInput{Section: section, RelativeLinks: true})
	if out.Error != nil {
		return ExportedPage{}, fmt.Errorf("rendering %s: %w", section, out.Error)
	}

	path := filepath.Join(outDir, core.ExportPath(section))
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ExportedPage{}, fmt.Errorf("failed to create dir for %s: %w", section, err)
	}
	if err := s.fs.WriteFile(path, []byte(out.HTML), 0o644); err != nil {
		return ExportedPage{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Debug("section exported", zap.String("section", section.Label()), zap.String("path", path))

	return ExportedPage{
		Section:     section,
		Path:        path,
		Size:        len(out.HTML),
		PosterFound: out.PosterFound,
	}, nil
}
