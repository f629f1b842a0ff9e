package core

import (
	"html/template"
)

// SectionContent is the static block emitted for one section.
type SectionContent struct {
	Heading string
	Body    template.HTML
}

// PageContent maps every section to its static block. It is built once
// at startup and only read afterwards.
type PageContent struct {
	sections map[Section]SectionContent
	Intro    template.HTML
}

func NewPageContent(intro template.HTML, sections map[Section]SectionContent) (*PageContent, error) {
	pc := &PageContent{
		sections: make(map[Section]SectionContent, len(sections)),
		Intro:    intro,
	}
	for _, s := range sectionOrder {
		c, ok := sections[s]
		if !ok {
			return nil, &MissingSectionError{Section: s}
		}
		pc.sections[s] = c
	}
	for s := range sections {
		if !s.Valid() {
			return nil, &UnknownSectionError{Label: string(s)}
		}
	}
	return pc, nil
}

func (pc *PageContent) Section(s Section) (SectionContent, bool) {
	c, ok := pc.sections[s]
	return c, ok
}

// Headings returns the designated heading of every section in display order.
func (pc *PageContent) Headings() []string {
	out := make([]string, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		out = append(out, pc.sections[s].Heading)
	}
	return out
}

type MissingSectionError struct {
	Section Section
}

func (e *MissingSectionError) Error() string {
	return "no content for section " + string(e.Section)
}

type UnknownSectionError struct {
	Label string
}

func (e *UnknownSectionError) Error() string {
	return "content for unknown section " + e.Label
}

func (e *UnknownSectionError) Unwrap() error {
	return ErrUnknownSection
}
