// Package ui holds the stateless building blocks of the landing page. Every
// function maps one content item (or a small set of props) to markup and
// nothing else.
package ui

import (
	"fmt"

	"hypnosis-landing/internal/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// RatingStars is the number of stars every testimonial shows
const RatingStars = 5

// Section wraps a page section; id doubles as the in-page anchor
func Section(id, class string, children ...g.Node) g.Node {
	return h.Section(h.ID(id), h.Class("py-16 md:py-24 "+class), g.Group(children))
}

// Container centres content at the page's max width
func Container(class string, children ...g.Node) g.Node {
	return h.Div(h.Class("mx-auto max-w-7xl px-4 sm:px-6 lg:px-8 "+class), g.Group(children))
}

// SectionHeading renders the centred title + lead paragraph used by most sections
func SectionHeading(title, lead string) g.Node {
	return h.Div(h.Class("mx-auto max-w-3xl text-center"),
		h.H2(h.Class("text-3xl font-bold tracking-tight"), g.Text(title)),
		g.If(lead != "", h.P(h.Class("mt-3 text-slate-600"), g.Text(lead))),
	)
}

// Reveal wraps children in a block that fades up once on load.
// delayMs staggers sibling blocks.
func Reveal(delayMs int, class string, children ...g.Node) g.Node {
	return h.Div(
		h.Class("reveal "+class),
		g.If(delayMs > 0, h.Style(fmt.Sprintf("animation-delay: %dms", delayMs))),
		g.Group(children),
	)
}

// Stat is a small icon + value + label badge
func Stat(icon, label, value string) g.Node {
	return h.Div(h.Class("flex items-center gap-4 rounded-2xl border border-slate-200 bg-white/5 p-4 backdrop-blur-sm"),
		h.Div(h.Class("rounded-xl bg-black/5 p-3"), Icon(icon, "h-6 w-6")),
		h.Div(
			h.Div(h.Class("text-xl font-semibold"), g.Text(value)),
			h.Div(h.Class("text-sm text-slate-500"), g.Text(label)),
		),
	)
}

// CheckList renders one list item with a check icon per entry
func CheckList(class, checkClass string, items []string) g.Node {
	return h.Ul(h.Class("space-y-2 "+class),
		g.Map(items, func(item string) g.Node {
			return h.Li(h.Class("flex items-start gap-2"),
				Icon(IconCheck, "mt-0.5 h-5 w-5 shrink-0 "+checkClass),
				g.Text(item),
			)
		}),
	)
}

// ServiceCard is a specialty card: title and its bullets
func ServiceCard(s content.Service, checkClass string) g.Node {
	return h.Div(h.Class("group rounded-2xl border border-slate-200 bg-white p-6 shadow-sm transition hover:shadow-lg"),
		h.H3(h.Class("text-lg font-semibold tracking-tight"), g.Text(s.Title)),
		CheckList("mt-4 text-slate-600", checkClass, s.Bullets),
	)
}

// HighlightCard is a one-line benefit card with a link to booking
func HighlightCard(hl content.Highlight, linkClass string) g.Node {
	return h.Div(h.Class("lift rounded-lg bg-white p-6 text-center shadow"),
		Icon(IconThumbsUp, "mx-auto mb-4 h-10 w-10 "+linkClass),
		h.H3(h.Class("mb-2 text-xl font-semibold"), g.Text(hl.Title)),
		h.P(g.Text(hl.Desc)),
		h.A(h.Href("#book"), h.Class("mt-4 inline-block font-semibold "+linkClass), g.Text("Book Now →")),
	)
}

// TherapyCard renders who a program is for, how it helps, its benefits and
// the embedded client quote, ending with a booking call-to-action.
func TherapyCard(t content.Therapy, checkClass, buttonClass string) g.Node {
	return h.Div(h.Class("rounded-2xl border border-slate-200 bg-white p-6 shadow-sm"), h.Data("therapy", t.ID),
		h.Div(h.Class("text-sm uppercase tracking-wider text-slate-500"), g.Text(t.Title)),
		h.H3(h.Class("mt-1 text-lg font-semibold"), g.Text("Who this helps")),
		h.P(h.Class("mt-1 text-sm text-slate-600"), g.Text(t.Who)),
		h.H4(h.Class("mt-4 font-semibold"), g.Text("How it helps")),
		h.Div(h.Data("list", "helps"), CheckList("mt-2 text-sm text-slate-600", checkClass, t.Helps)),
		h.H4(h.Class("mt-4 font-semibold"), g.Text("Benefits")),
		h.Div(h.Data("list", "benefits"), CheckList("mt-2 text-sm text-slate-600", checkClass, t.Benefits)),
		h.Div(h.Class("mt-4 rounded-xl bg-slate-50 p-3 text-sm"),
			h.Div(h.Class("flex items-start gap-2"),
				Icon(IconQuote, "mt-0.5 h-4 w-4 shrink-0 text-slate-400"),
				h.Em(g.Text("“"+t.Testimonial.Quote+"”")),
			),
			h.Div(h.Class("mt-1 text-xs text-slate-500"), g.Text("— "+t.Testimonial.Author)),
		),
		h.A(h.Href("#book"), h.Class("mt-5 inline-block rounded-xl px-4 py-2 text-sm font-semibold shadow "+buttonClass),
			g.Text("Book "+t.Title)),
	)
}

// TestimonialCard renders a client story under a fixed five-star rating.
// The rating does not depend on the input.
func TestimonialCard(t content.Testimonial) g.Node {
	stars := make([]g.Node, RatingStars)
	for i := range stars {
		stars[i] = Icon(IconStar, "h-5 w-5 fill-current")
	}
	return h.Div(h.Class("rounded-2xl border border-slate-200 bg-white p-6 shadow-sm"),
		h.Div(h.Class("flex items-center gap-1 text-amber-500"), h.Aria("label", "rating"), g.Group(stars)),
		h.P(h.Class("mt-4 leading-relaxed text-slate-700"), g.Text("“"+t.Quote+"”")),
		h.Div(h.Class("mt-3 text-sm font-medium text-slate-900"), g.Text(t.Author)),
		h.Div(h.Class("text-xs text-slate-500"), g.Text(t.Context)),
	)
}

// QuoteCard renders an anonymous one-line quote; n is 1-based
func QuoteCard(quote string, n int) g.Node {
	return h.Div(h.Class("lift rounded-lg bg-gray-50 p-6 shadow"),
		h.P(h.Class("mb-2 italic"), g.Text("“"+quote+"”")),
		h.P(h.Class("font-semibold"), g.Textf("– Client %d", n)),
	)
}

// VideoThumb links out to a video, showing its thumbnail when known
func VideoThumb(v content.VideoReference) g.Node {
	var preview g.Node
	if v.Thumbnail != "" {
		preview = h.Img(h.Src(v.Thumbnail), h.Alt(v.Title), h.Class("h-full w-full object-cover"), g.Attr("loading", "lazy"))
	} else {
		preview = Icon(IconPlay, "h-12 w-12 text-slate-500 transition group-hover:scale-110")
	}
	return h.A(h.Href(v.URL), h.Target("_blank"), h.Rel("noreferrer"),
		h.Class("group block overflow-hidden rounded-2xl border border-slate-200 bg-white shadow hover:shadow-md"),
		h.Div(h.Class("grid aspect-video w-full place-items-center bg-slate-100"), preview),
		h.Div(h.Class("p-4 text-sm font-medium"), g.Text(v.Title)),
	)
}

// VideoEmbed renders an inline player for a video
func VideoEmbed(v content.VideoReference) g.Node {
	return h.Div(h.Class("mx-auto aspect-video max-w-3xl overflow-hidden rounded-2xl shadow"),
		h.IFrame(
			h.Src(EmbedURL(v.URL)),
			h.Title(v.Title),
			h.Class("h-full w-full"),
			g.Attr("frameborder", "0"),
			g.Attr("allow", "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"),
			g.Attr("allowfullscreen"),
		),
	)
}

// FAQItem renders a collapsible question
func FAQItem(f content.FAQEntry) g.Node {
	return h.Details(h.Class("group py-4"),
		h.Summary(h.Class("flex cursor-pointer list-none items-center justify-between font-medium text-slate-900"),
			g.Text(f.Question),
			h.Span(h.Class("ml-4 text-slate-400 transition group-open:rotate-180"), g.Text("▾")),
		),
		h.P(h.Class("mt-2 text-slate-600"), g.Text(f.Answer)),
	)
}
