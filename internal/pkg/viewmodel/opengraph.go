package viewmodel

// OpenGraph holds the social preview tags of a page.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	URL         string
}
