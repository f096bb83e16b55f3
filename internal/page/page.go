// Package page composes the widgets into the full landing page document.
// A single composition serves every theme: the theme picks the colours, the
// hero layout and the order of the sections.
package page

import (
	"time"

	"github.com/sirupsen/logrus"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"hypnosis-landing/internal/content"
	"hypnosis-landing/internal/lead"
	"hypnosis-landing/internal/schema"
	"hypnosis-landing/internal/theme"
	"hypnosis-landing/internal/ui"
)

// Options is everything one render depends on
type Options struct {
	Theme   theme.Theme
	Catalog *content.Catalog
	Lead    lead.FormState
	// Notice is the placeholder message shown after an accepted submission
	Notice string
	// FormError is shown under the form when a submission was rejected
	FormError string
	// FormAction is where the form posts without JavaScript; empty in
	// static exports, where lead.js handles the submit on its own.
	FormAction string
	// LeadEndpoint is the JSON endpoint lead.js posts to; empty means the
	// script only shows the notice.
	LeadEndpoint string
	LiveReload   bool
	Year         int
}

// sectionLinks are the footer quick links, in footer order
var sectionLinks = []struct {
	id    theme.SectionID
	label string
}{
	{theme.Services, "Services"},
	{theme.Outcomes, "Clients & Outcomes"},
	{theme.Book, "Book Session"},
	{theme.Videos, "Videos"},
	{theme.Guide, "Free Audio"},
	{theme.FAQ, "FAQ"},
	{theme.Contact, "Contact"},
}

// Render returns the complete HTML document
func Render(opts Options) g.Node {
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}
	b := opts.Catalog.Business
	th := opts.Theme

	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(b.Name+" — "+b.Person+", Certified Hypnotherapist")),
				Meta(Name("description"), Content("Private hypnotherapy with "+b.Person+" in "+b.Address.Locality+". Weight loss, quit smoking, stress & anxiety.")),
				Link(Rel("canonical"), Href(b.SiteURL)),
				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				structuredData(b),
			),
			Body(Class("min-h-screen "+th.PageClass), Data("theme", th.Name),
				navbar(opts),
				Main(
					g.Map(indexed(th.Sections), func(s indexedSection) g.Node {
						return section(opts, s.id, s.index)
					}),
				),
				footer(opts),
				Script(Src("/static/js/lead.js"), Defer()),
				g.If(opts.LiveReload, Script(Src("/static/js/livereload.js"), Defer())),
			),
		),
	)
}

type indexedSection struct {
	id    theme.SectionID
	index int
}

func indexed(ids []theme.SectionID) []indexedSection {
	out := make([]indexedSection, len(ids))
	for i, id := range ids {
		out[i] = indexedSection{id: id, index: i}
	}
	return out
}

// background alternates section backgrounds after the hero
func background(th theme.Theme, index int) string {
	if index%2 == 1 {
		return th.AltSection
	}
	return "bg-white"
}

func section(opts Options, id theme.SectionID, index int) g.Node {
	bg := background(opts.Theme, index)
	switch id {
	case theme.Top:
		return hero(opts)
	case theme.Services:
		return services(opts, bg)
	case theme.Outcomes:
		return outcomes(opts, bg)
	case theme.About:
		return about(opts, bg)
	case theme.Book:
		return book(opts, bg)
	case theme.Testimonials:
		return testimonials(opts, bg)
	case theme.Videos:
		return videos(opts, bg)
	case theme.Guide:
		return guide(opts, bg)
	case theme.FAQ:
		return faq(opts, bg)
	case theme.Contact:
		return contact(opts, bg)
	}
	logrus.WithField("section", id).Warn("Unknown section skipped")
	return nil
}

func structuredData(b content.Business) g.Node {
	rec, err := schema.LocalBusiness(b)
	if err != nil {
		logrus.WithError(err).Warn("Structured data omitted")
		return nil
	}
	node, err := schema.Script(rec)
	if err != nil {
		logrus.WithError(err).Warn("Structured data omitted")
		return nil
	}
	return node
}

func navbar(opts Options) g.Node {
	b := opts.Catalog.Business
	th := opts.Theme
	return Header(Class("sticky top-0 z-50 border-b bg-white/80 backdrop-blur-lg"),
		ui.Container("flex h-16 items-center justify-between",
			A(Href("#top"), Class("flex items-center gap-3"),
				Div(Class("h-9 w-9 rounded-xl bg-gradient-to-tr shadow-inner "+th.Gradient)),
				Div(Class("text-sm uppercase tracking-widest text-slate-500"), g.Text(b.Name)),
			),
			Div(Class("flex items-center gap-3"),
				A(Href(b.TelURI()), Data("phone", "display"),
					Class("hidden items-center gap-2 rounded-xl border border-slate-200 px-3 py-2 text-sm font-medium text-slate-700 hover:bg-slate-50 md:flex"),
					ui.Icon(ui.IconPhone, "h-4 w-4"), g.Text(b.Phone),
				),
				A(Href("#book"), Class("rounded-xl px-4 py-2 text-sm font-semibold shadow "+th.Accent.Button), g.Text("Book Now")),
			),
		),
	)
}

func footer(opts Options) g.Node {
	b := opts.Catalog.Business
	th := opts.Theme

	var links []g.Node
	for _, l := range sectionLinks {
		if th.Has(l.id) {
			links = append(links, Li(A(Href("#"+string(l.id)), Class("hover:underline"), g.Text(l.label))))
		}
	}

	return Footer(Class("mt-10 border-t bg-gradient-to-tr "+th.Gradient+" "+th.FooterClass),
		ui.Container("py-10",
			Div(Class("grid gap-8 md:grid-cols-3"),
				Div(
					Div(Class("text-lg font-semibold"), g.Text(b.Name)),
					P(Class("mt-2 text-sm text-white/80"), g.Text(b.Address.Line())),
					A(Href(b.TelURI()), Data("phone", "display"), Class("mt-1 block text-sm text-white/90"), g.Text(b.Phone)),
				),
				Div(Class("text-sm"),
					Div(Class("font-semibold"), g.Text("Quick Links")),
					Ul(Class("mt-2 space-y-1 text-white/80"), g.Group(links)),
				),
				Div(Class("text-xs text-white/80"),
					Div(Class("font-semibold"), g.Text("Disclaimer")),
					P(Class("mt-2"), g.Text("Hypnotherapy is a complementary approach and not a substitute for medical or psychological care. Individual results vary.")),
					Div(Class("mt-3"), g.Textf("© %d %s • Privacy • Terms", opts.Year, b.Name)),
				),
			),
		),
	)
}
