package core

type Layout string

const (
	LayoutCentered Layout = "centered"
	LayoutWide     Layout = "wide"
)

const (
	PageTitle      = "Project Introduction Website"
	SiteTitle      = "NameCheck AI: Real-Time Name Validation"
	SidebarTitle   = "Navigation"
	NavCaption     = "Go to"
	NavInputName   = "page"
	PosterFilename = "Report.pdf"
)

// PageConfig is the page shell applied to every render.
type PageConfig struct {
	Title  string
	Layout Layout
	CSS    string
}

func DefaultPageConfig() PageConfig {
	return PageConfig{
		Title:  PageTitle,
		Layout: LayoutWide,
		CSS:    ThemeCSS(),
	}
}
