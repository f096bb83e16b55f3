package theme

var classic = Theme{
	Name:  "classic",
	Label: "Classic indigo",
	Accent: Accent{
		Button:     "bg-indigo-600 text-white hover:bg-indigo-700",
		ButtonAlt:  "border border-slate-300 text-slate-700 hover:bg-slate-50",
		Text:       "text-indigo-600",
		Badge:      "bg-indigo-50 text-indigo-700",
		Check:      "text-emerald-600",
		InputFocus: "focus:border-indigo-500",
	},
	Gradient:    "from-indigo-900 via-indigo-800 to-indigo-700",
	PageClass:   "bg-gradient-to-br from-slate-50 to-slate-100 text-slate-900",
	HeroClass:   "bg-white",
	HeroLayout:  HeroSplit,
	AltSection:  "bg-slate-50",
	FooterClass: "text-white",
	Sections:    []SectionID{Top, Services, Outcomes, About, Book, Testimonials, Videos, Guide, FAQ},
}

var spotlight = Theme{
	Name:  "spotlight",
	Label: "Spotlight blue & gold",
	Accent: Accent{
		Button:     "bg-yellow-400 text-gray-900 hover:bg-yellow-300",
		ButtonAlt:  "border border-white/40 text-white hover:bg-white/10",
		Text:       "text-blue-600",
		Badge:      "bg-yellow-100 text-blue-900",
		Check:      "text-blue-600",
		InputFocus: "focus:border-blue-600",
	},
	Gradient:    "from-blue-900 via-blue-900 to-blue-800",
	PageClass:   "bg-white text-gray-800",
	HeroClass:   "bg-blue-900 text-white",
	HeroLayout:  HeroCentered,
	AltSection:  "bg-gray-100",
	FooterClass: "text-white",
	Sections:    []SectionID{Top, Videos, Services, Testimonials, Book, Contact, Outcomes, Guide, FAQ},
	Compact:     true,
}

var calm = Theme{
	Name:  "calm",
	Label: "Calm teal",
	Accent: Accent{
		Button:     "bg-teal-600 text-white hover:bg-teal-700",
		ButtonAlt:  "border border-teal-200 text-teal-800 hover:bg-teal-50",
		Text:       "text-teal-600",
		Badge:      "bg-teal-50 text-teal-700",
		Check:      "text-teal-600",
		InputFocus: "focus:border-teal-500",
	},
	Gradient:    "from-teal-900 via-teal-800 to-emerald-700",
	PageClass:   "bg-gradient-to-br from-stone-50 to-teal-50 text-stone-900",
	HeroClass:   "bg-gradient-to-b from-teal-50 to-white",
	HeroLayout:  HeroSplit,
	AltSection:  "bg-white/70",
	FooterClass: "text-white",
	Sections:    []SectionID{Top, Testimonials, Services, Outcomes, Videos, Book, About, FAQ, Guide, Contact},
}
