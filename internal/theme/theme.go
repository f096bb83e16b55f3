// Package theme describes the visual variants of the landing page. A Theme is
// plain configuration: colour tokens, hero treatment and the order in which
// sections appear. One page composition renders every theme.
package theme

import (
	"errors"
	"fmt"
	"sort"
)

// SectionID identifies a page section; it is also the anchor id in the markup
type SectionID string

const (
	Top          SectionID = "top"
	Services     SectionID = "services"
	Outcomes     SectionID = "outcomes"
	About        SectionID = "about"
	Book         SectionID = "book"
	Testimonials SectionID = "testimonials"
	Videos       SectionID = "videos"
	Guide        SectionID = "guide"
	FAQ          SectionID = "faq"
	Contact      SectionID = "contact"
)

// HeroLayout selects how the hero section is laid out
type HeroLayout string

const (
	// HeroSplit puts the pitch left and the portrait card right
	HeroSplit HeroLayout = "split"
	// HeroCentered stacks portrait, name and CTA in the middle
	HeroCentered HeroLayout = "centered"
)

// ErrUnknownTheme is returned by Lookup for names that are not registered
var ErrUnknownTheme = errors.New("unknown theme")

// Accent holds the class tokens that carry a theme's brand colour
type Accent struct {
	Button     string // primary call-to-action
	ButtonAlt  string // secondary call-to-action
	Text       string // highlighted heading words and links
	Badge      string // pill above the hero heading
	Check      string // check-mark icons
	InputFocus string
}

// Theme is the full set of presentation choices for one page variant
type Theme struct {
	Name        string
	Label       string
	Accent      Accent
	Gradient    string // tailwind gradient stops, used by logo, hero glow and footer
	PageClass   string
	HeroClass   string
	HeroLayout  HeroLayout
	AltSection  string // background of every other section
	FooterClass string
	Sections    []SectionID
	// Compact switches to the short-form copy: highlight cards instead of
	// service cards, anonymous quotes instead of testimonials, and an
	// embedded featured video.
	Compact bool
}

// Has reports whether the theme renders the given section
func (t Theme) Has(id SectionID) bool {
	for _, s := range t.Sections {
		if s == id {
			return true
		}
	}
	return false
}

// Validate checks that sections are unique and that the sections the hero
// and navigation always link to are present.
func (t Theme) Validate() error {
	if t.Name == "" {
		return errors.New("theme has no name")
	}
	seen := make(map[SectionID]bool, len(t.Sections))
	for _, s := range t.Sections {
		if seen[s] {
			return fmt.Errorf("theme %s: duplicate section %q", t.Name, s)
		}
		seen[s] = true
	}
	for _, required := range []SectionID{Top, Book, Videos} {
		if !seen[required] {
			return fmt.Errorf("theme %s: missing required section %q", t.Name, required)
		}
	}
	return nil
}

var registry = map[string]Theme{
	classic.Name:   classic,
	spotlight.Name: spotlight,
	calm.Name:      calm,
}

// DefaultName is the theme served when none is configured
const DefaultName = "classic"

// Lookup returns the registered theme with the given name
func Lookup(name string) (Theme, error) {
	t, ok := registry[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Default returns the classic theme
func Default() Theme {
	return classic
}

// Names returns the registered theme names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered theme, sorted by name
func All() []Theme {
	names := Names()
	themes := make([]Theme, 0, len(names))
	for _, name := range names {
		themes = append(themes, registry[name])
	}
	return themes
}
