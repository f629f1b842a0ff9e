// Package content turns the markdown copy of the site into core.PageContent.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"path"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/namecheck-ai/namecheck/internal/adapters/fs"
	"github.com/namecheck-ai/namecheck/internal/core"
)

const (
	introFile   = "intro.md"
	sectionsDir = "sections"
)

var (
	ErrMissingSection = errors.New("missing section content")
	ErrFrontMatter    = errors.New("invalid front matter")
)

type Loader struct {
	fs fs.FileSystem
	md goldmark.Markdown
}

func NewLoader(fsys fs.FileSystem) *Loader {
	return &Loader{
		fs: fsys,
		md: newMarkdown(),
	}
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			meta.Meta,
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
				highlighting.WithFormatOptions(chromahtml.WithClasses(false)),
			),
		),
	)
}

// Default loads the copy embedded in the binary.
func Default() (*core.PageContent, error) {
	return NewLoader(fs.NewEmbedFileSystem(Files)).Load()
}

func SectionFile(s core.Section) string {
	return path.Join(sectionsDir, s.Slug()+".md")
}

// Load renders the intro and every markdown file in the sections
// directory. Each file names its section in the front matter; a file for a
// section the site does not have is an error, as is a missing section.
func (l *Loader) Load() (*core.PageContent, error) {
	introSrc, err := l.fs.ReadFile(introFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", introFile, err)
	}
	intro, _, err := l.convert(introSrc)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", introFile, err)
	}

	entries, err := l.fs.ReadDir(sectionsDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sectionsDir, err)
	}

	sections := make(map[core.Section]core.SectionContent, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		s, c, err := l.loadSection(path.Join(sectionsDir, e.Name()))
		if err != nil {
			return nil, err
		}
		sections[s] = c
	}

	for _, s := range core.Sections() {
		if _, ok := sections[s]; !ok {
			return nil, fmt.Errorf("%w: %s (%s)", ErrMissingSection, s, SectionFile(s))
		}
	}

	return core.NewPageContent(intro, sections)
}

func (l *Loader) loadSection(file string) (core.Section, core.SectionContent, error) {
	src, err := l.fs.ReadFile(file)
	if err != nil {
		return "", core.SectionContent{}, fmt.Errorf("reading %s: %w", file, err)
	}

	body, fm, err := l.convert(src)
	if err != nil {
		return "", core.SectionContent{}, fmt.Errorf("rendering %s: %w", file, err)
	}

	label := stringField(fm, "label")
	if label == "" {
		return "", core.SectionContent{}, fmt.Errorf("%w: %s has no label", ErrFrontMatter, file)
	}

	slug := strings.TrimSuffix(path.Base(file), ".md")
	if s, ok := core.SectionForSlug(slug); ok && label != s.Label() {
		return "", core.SectionContent{}, fmt.Errorf("%w: %s declares label %q, want %q", ErrFrontMatter, file, label, s.Label())
	}

	heading := stringField(fm, "heading")
	if heading == "" {
		return "", core.SectionContent{}, fmt.Errorf("%w: %s has no heading", ErrFrontMatter, file)
	}

	return core.Section(label), core.SectionContent{
		Heading: heading,
		Body:    body,
	}, nil
}

func (l *Loader) convert(src []byte) (template.HTML, map[string]any, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := l.md.Convert(src, &buf, parser.WithContext(ctx)); err != nil {
		return "", nil, err
	}

	fm, err := meta.TryGet(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	return template.HTML(strings.TrimSpace(buf.String())), fm, nil
}

func stringField(fm map[string]any, key string) string {
	v, ok := fm[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
