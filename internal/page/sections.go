package page

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"hypnosis-landing/internal/content"
	"hypnosis-landing/internal/lead"
	"hypnosis-landing/internal/theme"
	"hypnosis-landing/internal/ui"
)

func hero(opts Options) g.Node {
	if opts.Theme.HeroLayout == theme.HeroCentered {
		return heroCentered(opts)
	}
	return heroSplit(opts)
}

func heroSplit(opts Options) g.Node {
	b := opts.Catalog.Business
	th := opts.Theme
	return ui.Section(string(theme.Top), th.HeroClass,
		ui.Container("",
			Div(Class("grid items-center gap-10 md:grid-cols-2"),
				ui.Reveal(0, "",
					Span(Class("inline-flex items-center gap-2 rounded-full px-3 py-1 text-xs font-medium "+th.Accent.Badge),
						ui.Icon(ui.IconShield, "h-4 w-4"),
						g.Textf("Since %d • Certified Hypnotherapist", b.Since),
					),
					H1(Class("mt-4 text-4xl font-extrabold leading-tight tracking-tight md:text-5xl"),
						g.Text("Break Habits. Reduce Stress. "),
						Span(Class(th.Accent.Text), g.Text("Feel in Control.")),
					),
					P(Class("mt-4 text-lg text-slate-600"),
						g.Text("Private hypnotherapy with "), Strong(g.Text(b.Person)),
						g.Textf(" in %s, %s. Evidence‑informed approaches for weight loss, smoking cessation, and anxiety reduction.", b.Address.Locality, b.Address.Region),
					),
					Div(Class("mt-6 flex flex-wrap items-center gap-3"),
						A(Href("#book"), Class("inline-flex items-center gap-2 rounded-xl px-5 py-3 text-sm font-semibold shadow "+th.Accent.Button),
							ui.Icon(ui.IconCalendar, "h-4 w-4"), g.Text("Book Your Session"),
						),
						A(Href("#videos"), Class("inline-flex items-center gap-2 rounded-xl px-5 py-3 text-sm font-semibold "+th.Accent.ButtonAlt),
							ui.Icon(ui.IconPlay, "h-4 w-4"), g.Textf("Watch %s on YouTube", firstName(b.Person)),
						),
					),
					Div(Class("mt-6 grid grid-cols-3 gap-3 text-sm text-slate-600"),
						miniStat("1:1", "Personalized"),
						miniStat("Hybrid", "In‑person / Virtual"),
						miniStat("HIPAA", "Client privacy"),
					),
				),
				ui.Reveal(100, "relative",
					Div(Class("absolute -inset-6 -z-10 rounded-3xl bg-gradient-to-tr opacity-10 "+th.Gradient)),
					portrait(b, "aspect-[4/3] w-full overflow-hidden rounded-3xl border border-slate-200 bg-white shadow grid place-items-center content-center"),
				),
			),
		),
	)
}

func heroCentered(opts Options) g.Node {
	b := opts.Catalog.Business
	th := opts.Theme
	return ui.Section(string(theme.Top), "px-4 text-center "+th.HeroClass,
		ui.Reveal(0, "",
			Img(Src(b.ImageURL), Alt(b.Person), Class("mx-auto mb-4 h-32 w-32 rounded-full bg-white object-cover")),
			H1(Class("mb-2 text-4xl font-bold"), g.Text(b.Person)),
			P(Class("mb-6 text-lg"), g.Textf("Certified Hypnotherapist – Transforming Lives in %s", b.Address.Locality)),
			Div(Class("flex flex-wrap justify-center gap-3"),
				A(Href("#book"), Class("lift rounded-lg px-6 py-3 font-semibold "+th.Accent.Button), g.Text("Book Your Session")),
				A(Href("#videos"), Class("rounded-lg px-6 py-3 font-semibold "+th.Accent.ButtonAlt), g.Text("Watch the Video")),
			),
		),
	)
}

func portrait(b content.Business, class string) g.Node {
	return Div(Class(class),
		Img(Src(b.ImageURL), Alt(b.Person), Class("mx-auto h-28 w-28 rounded-full object-cover")),
		Div(Class("mt-4 text-center text-xl font-semibold"), g.Text(b.Person)),
		Div(Class("text-center text-slate-500"), g.Text(b.Credentials)),
	)
}

func miniStat(value, label string) g.Node {
	return Div(Class("rounded-xl bg-slate-50 p-3 text-center"),
		Div(Class("text-xl font-bold"), g.Text(value)),
		Div(g.Text(label)),
	)
}

func services(opts Options, bg string) g.Node {
	c := opts.Catalog
	th := opts.Theme
	if th.Compact {
		return ui.Section(string(theme.Services), bg+" px-4",
			H2(Class("mb-8 text-center text-2xl font-bold"), g.Text("How Our Therapies Help")),
			Div(Class("mx-auto grid max-w-5xl gap-8 md:grid-cols-3"),
				g.Map(c.Highlights, func(hl content.Highlight) g.Node {
					return ui.HighlightCard(hl, th.Accent.Text)
				}),
			),
		)
	}
	return ui.Section(string(theme.Services), bg,
		ui.Container("",
			ui.SectionHeading("Specialties", "Targeted programs designed to help you change faster and keep results longer."),
			Div(Class("mt-10 grid gap-6 md:grid-cols-2 lg:grid-cols-4"),
				g.Map(c.Services, func(s content.Service) g.Node {
					return ui.ServiceCard(s, th.Accent.Check)
				}),
			),
		),
	)
}

func outcomes(opts Options, bg string) g.Node {
	th := opts.Theme
	return ui.Section(string(theme.Outcomes), bg,
		ui.Container("",
			Div(
				H2(Class("text-3xl font-bold tracking-tight"), g.Text("Clients & Outcomes")),
				P(Class("mt-2 text-slate-600"), g.Text("Explore who benefits, how each therapy helps, and the key results you can expect.")),
			),
			Div(Class("mt-8 grid gap-6 md:grid-cols-2 lg:grid-cols-4"),
				g.Map(opts.Catalog.Therapies, func(t content.Therapy) g.Node {
					return ui.TherapyCard(t, th.Accent.Check, th.Accent.Button)
				}),
			),
		),
	)
}

func about(opts Options, bg string) g.Node {
	b := opts.Catalog.Business
	th := opts.Theme
	return ui.Section(string(theme.About), bg,
		ui.Container("",
			Div(Class("grid items-center gap-10 md:grid-cols-2"),
				Div(
					H2(Class("text-3xl font-bold tracking-tight"), g.Textf("Meet %s", firstName(b.Person))),
					P(Class("mt-4 leading-relaxed text-slate-600"),
						g.Textf("%s is a certified hypnotherapist and integrative health & life coach serving %s since %d. Sessions combine hypnosis, NLP, and practical coaching to help you change beliefs and daily behaviors.",
							b.Person, b.Address.Locality, b.Since),
					),
					ui.CheckList("mt-6 text-slate-700", th.Accent.Check, []string{
						"IMDHA • IACT • NLP practitioner (placeholders)",
						"Private, confidential 1:1 support",
						"In‑person in " + b.Address.Locality + " & secure tele‑sessions",
					}),
				),
				Div(Class("grid gap-4 sm:grid-cols-2"),
					ui.Stat(ui.IconShield, "Certified", "Board‑recognized"),
					ui.Stat(ui.IconCalendar, "Flexible", "Weekday & evening"),
					ui.Stat(ui.IconCreditCard, "Deposit", b.Deposit+" refundable"),
					ui.Stat(ui.IconStar, "Reviews", "Client‑rated high"),
				),
			),
		),
	)
}

func book(opts Options, bg string) g.Node {
	b := opts.Catalog.Business
	th := opts.Theme
	if th.Compact {
		return ui.Section(string(theme.Book), "px-4 text-center "+th.HeroClass,
			H2(Class("mb-4 text-2xl font-bold"), g.Text("Book Your Session Now")),
			P(Class("mb-6"), g.Textf("Secure your spot with a deposit of %s", b.Deposit)),
			Img(Src(calendarMock()), Alt("Booking Calendar"), Class("mx-auto mb-6 w-full max-w-3xl rounded-lg shadow-lg")),
			Button(Type("button"), Disabled(), Title("Payment is collected by the hosted booking calendar"),
				Class("cursor-not-allowed rounded-lg px-6 py-3 font-semibold opacity-80 "+th.Accent.Button),
				g.Text("Pay & Confirm"),
			),
		)
	}
	return ui.Section(string(theme.Book), bg,
		ui.Container("",
			Div(Class("grid items-start gap-8 md:grid-cols-5"),
				Div(Class("md:col-span-3"),
					H2(Class("text-3xl font-bold tracking-tight"), g.Text("Reserve Your Strategy Session")),
					P(Class("mt-3 text-slate-600"),
						g.Textf("Choose a time that works for you. A small refundable deposit (\"%s\") holds your spot and reduces no‑shows.", b.Deposit),
					),
					Div(Class("mt-6 overflow-hidden rounded-2xl border border-slate-200 bg-white p-4 shadow"),
						Img(Src(calendarMock()), Alt("Calendar preview"), Class("w-full rounded-xl")),
					),
					Div(Class("mt-3 flex items-center gap-3 text-xs text-slate-500"),
						ui.Icon(ui.IconShield, "h-4 w-4"),
						g.Text("Secure payments via Stripe • Attach product priced at "), Strong(g.Text(b.Deposit)), g.Text(" in GHL Paid Calendar"),
					),
				),
				Div(Class("md:col-span-2"),
					Div(Class("rounded-2xl border border-slate-200 bg-white p-6 shadow"),
						H3(Class("text-lg font-semibold"), g.Text("What’s Included")),
						ui.CheckList("mt-4 text-slate-600", th.Accent.Check, []string{
							"45–60 min strategy session",
							"Personalized plan + first techniques",
							"Deposit " + b.Deposit + " applied to first package or refunded per policy",
						}),
						Div(Class("mt-6 rounded-xl bg-slate-50 p-4 text-sm"),
							Div(Class("font-semibold"), g.Text("How payment works")),
							P(Class("mt-1 text-slate-600"),
								g.Text("Enable "), Strong(g.Text("Paid Booking")),
								g.Textf(" on your GHL calendar and attach a Stripe product priced %s. Confirmation email + SMS are sent automatically.", b.Deposit),
							),
						),
					),
				),
			),
		),
	)
}

// calendarMock is an inline SVG stand-in for the booking calendar embed
func calendarMock() string {
	svg := `<svg xmlns='http://www.w3.org/2000/svg' width='1200' height='520'>` +
		`<rect width='100%' height='100%' fill='white' />` +
		`<rect x='20' y='20' width='1160' height='480' rx='16' ry='16' fill='rgb(248,250,252)' stroke='rgb(226,232,240)' />` +
		`<text x='50%' y='50%' dominant-baseline='middle' text-anchor='middle' font-family='Inter, system-ui' font-size='22' fill='rgb(100,116,139)'>Calendar Embed Image Mock — replace with GHL Calendar later</text>` +
		`</svg>`
	return "data:image/svg+xml;utf8," + url.PathEscape(svg)
}

func testimonials(opts Options, bg string) g.Node {
	c := opts.Catalog
	if opts.Theme.Compact {
		return ui.Section(string(theme.Testimonials), bg+" px-4",
			H2(Class("mb-8 text-center text-2xl font-bold"), g.Text("What Our Clients Say")),
			Div(Class("mx-auto grid max-w-4xl gap-8 md:grid-cols-2"),
				g.Group(quoteCards(c.Quotes)),
			),
		)
	}
	return ui.Section(string(theme.Testimonials), bg,
		ui.Container("",
			ui.SectionHeading("Client Stories", "Real experiences from private clients. Individual results vary."),
			Div(Class("mt-10 grid gap-6 md:grid-cols-3"),
				g.Map(c.Testimonials, ui.TestimonialCard),
			),
		),
	)
}

func quoteCards(quotes []string) []g.Node {
	cards := make([]g.Node, len(quotes))
	for i, q := range quotes {
		cards[i] = ui.QuoteCard(q, i+1)
	}
	return cards
}

func videos(opts Options, bg string) g.Node {
	c := opts.Catalog
	b := c.Business
	gallery := c.Videos

	var featured g.Node
	if opts.Theme.Compact {
		if v, ok := c.FeaturedVideo(); ok && ui.YouTubeID(v.URL) != "" {
			featured = Div(Class("mt-8"), ui.VideoEmbed(v))
			gallery = gallery[1:]
		}
	}

	return ui.Section(string(theme.Videos), bg,
		ui.Container("",
			ui.SectionHeading(fmt.Sprintf("Watch %s", firstName(b.Person)),
				fmt.Sprintf("Short demos and overviews from the %s YouTube channel.", b.Name)),
			featured,
			g.If(len(gallery) > 0,
				Div(Class("mt-8 grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
					g.Map(gallery, ui.VideoThumb),
				),
			),
		),
	)
}

func guide(opts Options, bg string) g.Node {
	b := opts.Catalog.Business
	th := opts.Theme
	input := "w-full rounded-xl border border-slate-300 bg-white px-4 py-3 text-sm outline-none " + th.Accent.InputFocus

	return ui.Section(string(theme.Guide), bg,
		ui.Container("",
			Div(Class("grid items-center gap-8 md:grid-cols-2"),
				Div(
					H2(Class("text-2xl font-bold tracking-tight"), g.Text("Not ready to book?")),
					P(Class("mt-2 text-slate-600"),
						g.Textf("Get %s’s ", firstName(b.Person)), Strong(g.Text("7‑Minute Reset")),
						g.Text(" audio and 3 practical tips to feel calmer today. We’ll also send info on programs and pricing."),
					),
					g.If(opts.Notice != "",
						Div(ID("lead-notice"), Role("status"), Class("mt-4 rounded-xl bg-emerald-50 px-4 py-3 text-sm text-emerald-800"), g.Text(opts.Notice)),
					),
					g.If(opts.FormError != "",
						Div(ID("lead-error"), Role("alert"), Class("mt-4 rounded-xl bg-rose-50 px-4 py-3 text-sm text-rose-800"), g.Text(opts.FormError)),
					),
					Form(ID("lead-form"), Method("post"), Class("mt-5 grid gap-3 sm:grid-cols-2"),
						g.If(opts.FormAction != "", Action(opts.FormAction)),
						g.If(opts.LeadEndpoint != "", Data("endpoint", opts.LeadEndpoint)),
						Data("notice", lead.PlaceholderNotice),
						Input(Required(), Type("email"), Name("email"), Value(opts.Lead.Email), Placeholder("Email address"),
							AutoComplete("email"), Class(input)),
						Input(Required(), Type("tel"), Name("phone"), Value(opts.Lead.Phone), Placeholder("Mobile (for SMS tips)"),
							AutoComplete("tel"), Class(input)),
						Button(Type("submit"), Class("rounded-xl px-5 py-3 text-sm font-semibold shadow sm:col-span-2 "+th.Accent.Button),
							g.Text("Send me the audio"),
						),
					),
					P(Class("mt-2 text-xs text-slate-500"),
						g.Textf("By submitting, you agree to receive helpful emails/SMS from %s. Reply STOP to opt out.", b.Name),
					),
				),
				Div(Class("rounded-2xl border border-slate-200 bg-white p-6 shadow"),
					H3(Class("text-lg font-semibold"), g.Text("What you’ll get")),
					ui.CheckList("mt-3 text-slate-600", th.Accent.Check, []string{
						"MP3 audio to reset in minutes",
						"3 simple techniques for cravings/stress",
						"Pricing & next‑step guide",
					}),
				),
			),
		),
	)
}

func faq(opts Options, bg string) g.Node {
	return ui.Section(string(theme.FAQ), bg,
		ui.Container("",
			Div(Class("mx-auto max-w-3xl"),
				H2(Class("text-3xl font-bold tracking-tight"), g.Text("FAQ")),
				Div(Class("mt-6 divide-y divide-slate-200"),
					g.Map(opts.Catalog.FAQ, ui.FAQItem),
				),
			),
		),
	)
}

func contact(opts Options, bg string) g.Node {
	b := opts.Catalog.Business
	return ui.Section(string(theme.Contact), bg+" px-4 text-center",
		H2(Class("mb-6 text-2xl font-bold"), g.Text("Get In Touch")),
		P(Class("mb-4 flex items-center justify-center gap-2"),
			ui.Icon(ui.IconPhone, "h-5 w-5"),
			A(Href(b.TelURI()), Data("phone", "display"), g.Text(b.Phone)),
		),
		g.If(b.Email != "",
			P(Class("mb-4 flex items-center justify-center gap-2"),
				ui.Icon(ui.IconMail, "h-5 w-5"),
				A(Href("mailto:"+b.Email), g.Text(b.Email)),
			),
		),
		P(Class("text-slate-600"), g.Text(b.Address.Line())),
	)
}

func firstName(person string) string {
	for i, r := range person {
		if r == ' ' {
			return person[:i]
		}
	}
	return person
}
