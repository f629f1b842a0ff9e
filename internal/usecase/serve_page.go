package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/namecheck-ai/namecheck/internal/core"
	"github.com/namecheck-ai/namecheck/internal/ui"
)

type ServePageInput struct {
	Section core.Section

	// RelativeLinks makes navigation links relative to the page, for
	// pages written to disk.
	RelativeLinks bool
}

type ServePageOutput struct {
	Section     core.Section
	HTML        string
	PosterFound bool
	Error       error
}

type PageOptions struct {
	PosterPath   string
	VideoURL     string
	PosterNotice bool
}

func DefaultPageOptions() PageOptions {
	return PageOptions{
		PosterPath: core.PosterFilename,
		VideoURL:   core.VideoURL,
	}
}

type PageService struct {
	content *core.PageContent
	config  core.PageConfig
	fs      FileSystem
	logger  *zap.Logger
	opts    PageOptions
}

func NewPageService(content *core.PageContent, fs FileSystem, logger *zap.Logger, opts PageOptions) *PageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.PosterPath == "" {
		opts.PosterPath = core.PosterFilename
	}
	if opts.VideoURL == "" {
		opts.VideoURL = core.VideoURL
	}

	return &PageService{
		content: content,
		config:  core.DefaultPageConfig(),
		fs:      fs,
		logger:  logger,
		opts:    opts,
	}
}

// ServePage renders the full page for the selected section. The poster is
// read again on every Homepage render.
func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	out := ServePageOutput{Section: input.Section}

	if err := ctx.Err(); err != nil {
		out.Error = err
		return out
	}

	if !input.Section.Valid() {
		out.Error = fmt.Errorf("%w: %q", core.ErrUnknownSection, input.Section)
		return out
	}

	c, ok := s.content.Section(input.Section)
	if !ok {
		out.Error = fmt.Errorf("no content for section %s", input.Section)
		return out
	}

	var extra []g.Node
	if input.Section == core.SectionHomepage {
		extra, out.PosterFound = s.homepageExtras()
	}

	main, err := renderNodes(
		ui.Header(s.content.Intro),
		ui.Section(input.Section, c, extra...),
	)
	if err != nil {
		out.Error = fmt.Errorf("rendering section %s: %w", input.Section, err)
		return out
	}

	sidebar, err := renderNodes(ui.Nav(input.Section, input.RelativeLinks))
	if err != nil {
		out.Error = fmt.Errorf("rendering navigation: %w", err)
		return out
	}

	out.HTML, out.Error = core.RenderHTMLShell(s.config, sidebar, main)

	s.logger.Debug("section rendered",
		zap.String("section", input.Section.Label()),
		zap.Bool("poster", out.PosterFound),
	)

	return out
}

func (s *PageService) homepageExtras() ([]g.Node, bool) {
	nodes := []g.Node{
		ui.Video(s.opts.VideoURL),
		h.H2(g.Text(ui.PosterHeading)),
	}

	data, ok := LoadAsset(s.fs, s.logger, s.opts.PosterPath)
	switch {
	case ok:
		nodes = append(nodes, ui.Poster(core.PosterFilename, data))
	case s.opts.PosterNotice:
		nodes = append(nodes, ui.PosterNotice())
	}

	return nodes, ok
}

func renderNodes(nodes ...g.Node) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		if err := n.Render(&sb); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
