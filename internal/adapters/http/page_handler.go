package http

import (
	"bytes"
	"errors"
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/namecheck-ai/namecheck/internal/core"
	"github.com/namecheck-ai/namecheck/internal/usecase"
)

// SlugParam is the chi URL parameter holding the section slug.
const SlugParam = "slug"

type PageHandler struct {
	service *usecase.PageService
	logger  *zap.Logger
	isDev   bool
}

func NewPageHandler(service *usecase.PageService, logger *zap.Logger, isDev bool) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		service: service,
		logger:  logger,
		isDev:   isDev,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	section, ok := resolveSection(req)
	if !ok {
		h.serveError(w, http.StatusNotFound, core.ErrUnknownSection)
		return
	}

	output := h.service.ServePage(req.Context(), usecase.ServePageInput{Section: section})
	if output.Error != nil {
		status := http.StatusInternalServerError
		if errors.Is(output.Error, core.ErrUnknownSection) {
			status = http.StatusNotFound
		}
		h.logger.Error("failed to render page", zap.String("section", section.Label()), zap.Error(output.Error))
		h.serveError(w, status, output.Error)
		return
	}

	h.serveHTML(w, output.HTML)
}

// resolveSection picks the section from the path slug when there is one,
// otherwise from the page query parameter of the navigation form.
func resolveSection(req *http.Request) (core.Section, bool) {
	slug := chi.URLParam(req, SlugParam)
	if slug == "" {
		slug = strings.TrimPrefix(core.NormalizePath(req.URL.Path), "/")
	}
	if slug != "" {
		return core.SectionForSlug(slug)
	}
	return core.SelectSection(req.URL.Query().Get(core.NavInputName))
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (h *PageHandler) serveError(w http.ResponseWriter, status int, err error) {
	data := core.ErrorData{
		Status:  status,
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
