// Package namecheck serves the NameCheck AI project site: a sidebar of
// seven sections, the overview video and the downloadable poster.
package namecheck

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/namecheck-ai/namecheck/internal/adapters/env"
	"github.com/namecheck-ai/namecheck/internal/adapters/fs"
	adaptershttp "github.com/namecheck-ai/namecheck/internal/adapters/http"
	"github.com/namecheck-ai/namecheck/internal/adapters/logging"
	"github.com/namecheck-ai/namecheck/internal/content"
	"github.com/namecheck-ai/namecheck/internal/core"
	"github.com/namecheck-ai/namecheck/internal/usecase"
)

type FileSystem = fs.FileSystem

type ExportedPage = usecase.ExportedPage

type Option func(*options)

type options struct {
	posterPath   string
	posterNotice bool
	isDev        *bool
	logger       *zap.Logger
	fs           FileSystem
}

// WithPosterPath sets where the poster PDF is read from. Defaults to
// Report.pdf in the working directory.
func WithPosterPath(path string) Option {
	return func(o *options) { o.posterPath = path }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDev shows error details on error pages. Without it the mode comes
// from NAMECHECK_DEV.
func WithDev(isDev bool) Option {
	return func(o *options) { o.isDev = &isDev }
}

// WithPosterNotice shows a notice on the homepage when the poster is
// missing instead of leaving the download area empty.
func WithPosterNotice() Option {
	return func(o *options) { o.posterNotice = true }
}

// WithFileSystem replaces the file system the poster is read from and the
// export is written to.
func WithFileSystem(fsys FileSystem) Option {
	return func(o *options) { o.fs = fsys }
}

type App struct {
	pages  *usecase.PageService
	export *usecase.ExportService
	logger *zap.Logger
	isDev  bool
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

// notFoundRouter is implemented by routers with a custom not-found handler,
// such as chi.Mux.
type notFoundRouter interface {
	NotFound(handlerFn http.HandlerFunc)
}

func New(opts ...Option) (*App, error) {
	o := options{posterPath: core.PosterFilename}
	for _, opt := range opts {
		opt(&o)
	}

	isDev := env.DetectMode() == core.ModeDev
	if o.isDev != nil {
		isDev = *o.isDev
	}

	logger := o.logger
	if logger == nil {
		l, err := logging.New(isDev, false)
		if err != nil {
			return nil, err
		}
		logger = l
	}

	fsys := o.fs
	if fsys == nil {
		fsys = fs.NewOSFileSystem()
	}

	pc, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}

	pageOpts := usecase.DefaultPageOptions()
	pageOpts.PosterPath = o.posterPath
	pageOpts.PosterNotice = o.posterNotice

	pages := usecase.NewPageService(pc, fsys, logger, pageOpts)

	return &App{
		pages:  pages,
		export: usecase.NewExportService(pages, fsys, logger),
		logger: logger,
		isDev:  isDev,
	}, nil
}

// Wrap registers the site routes on api and returns it. Routers that accept
// a not-found handler get the HTML error page for unmatched paths.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("namecheck: nil router passed to Wrap; use app.Handler()")
	}

	pages := adaptershttp.NewPageHandler(a.pages, a.logger, a.isDev)

	api.Handle("/healthz", adaptershttp.HealthHandler())
	api.Handle("/", pages)
	api.Handle("/{"+adaptershttp.SlugParam+"}", pages)

	if nf, ok := api.(notFoundRouter); ok {
		nf.NotFound(pages.ServeHTTP)
	}

	return api
}

func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Recoverer)
	return a.Wrap(r)
}

// ExportStatic renders every section into dir so the site can be hosted
// without the server.
func (a *App) ExportStatic(ctx context.Context, dir string) ([]ExportedPage, error) {
	out := a.export.ExportStatic(ctx, usecase.ExportInput{OutDir: dir})
	if out.Error != nil {
		return nil, fmt.Errorf("export failed: %w", out.Error)
	}
	return out.Pages, nil
}
