package core

import (
	"errors"
	"strings"
)

// Section is one named view of the site. Its label is its identity.
type Section string

const (
	SectionHomepage    Section = "Homepage"
	SectionAbout       Section = "About"
	SectionObjectives  Section = "Objectives"
	SectionMethodology Section = "Methodology"
	SectionResults     Section = "Results"
	SectionFAQ         Section = "FAQ"
	SectionContact     Section = "Contact"
)

var ErrUnknownSection = errors.New("unknown section")

var sectionOrder = [...]Section{
	SectionHomepage,
	SectionAbout,
	SectionObjectives,
	SectionMethodology,
	SectionResults,
	SectionFAQ,
	SectionContact,
}

// Sections returns the navigation options in display order. The returned
// slice is a copy and may be modified by the caller.
func Sections() []Section {
	out := make([]Section, len(sectionOrder))
	copy(out, sectionOrder[:])
	return out
}

// DefaultSection is the option selected when none was chosen.
func DefaultSection() Section {
	return sectionOrder[0]
}

func (s Section) Label() string {
	return string(s)
}

func (s Section) String() string {
	return string(s)
}

// Slug is the URL path segment of the section.
func (s Section) Slug() string {
	return strings.ToLower(string(s))
}

// Path is the canonical URL of the section. The default section lives at /.
func (s Section) Path() string {
	if s == DefaultSection() {
		return "/"
	}
	return "/" + s.Slug()
}

// RelativePath links to s from the exported page of from. Exported pages
// live at index.html and <slug>/index.html, so the links work under any
// base path.
func (s Section) RelativePath(from Section) string {
	prefix := "./"
	if from != DefaultSection() {
		prefix = "../"
	}
	if s == DefaultSection() {
		return prefix
	}
	return prefix + s.Slug() + "/"
}

func (s Section) Valid() bool {
	for _, known := range sectionOrder {
		if s == known {
			return true
		}
	}
	return false
}

// SelectSection maps a navigation label to its Section. An empty label
// selects the default section.
func SelectSection(label string) (Section, bool) {
	if label == "" {
		return DefaultSection(), true
	}
	s := Section(label)
	if !s.Valid() {
		return "", false
	}
	return s, true
}

func SectionForSlug(slug string) (Section, bool) {
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return DefaultSection(), true
	}
	for _, s := range sectionOrder {
		if s.Slug() == slug {
			return s, true
		}
	}
	return "", false
}
