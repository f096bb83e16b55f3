package content

const youTubeChannel = "https://www.youtube.com/user/TampaHypnosis"

// Default returns the built-in content of the Tampa Hypnosis Center page.
// Each call returns a fresh value.
func Default() *Catalog {
	return &Catalog{
		Business: Business{
			Name:        "Tampa Hypnosis Center",
			Person:      "Ron Queeney",
			Credentials: "Certified Hypnotherapist • Health & Life Coach",
			Phone:       "(813) 919-5884",
			Address: Address{
				Street:     "7320 E. Fletcher Ave, Suite 1A",
				Locality:   "Tampa",
				Region:     "FL",
				PostalCode: "33637",
				Country:    "US",
			},
			SiteURL:        "https://tampahypnosiscenter.com",
			ImageURL:       "https://tampahypnosiscenter.com/wp-content/uploads/tampa-hypnosis-center-logo-v3.png",
			YouTubeChannel: youTubeChannel,
			AreaServed:     "Tampa Bay",
			Since:          2005,
			Deposit:        "$$xx",
		},
		Services: []Service{
			{Title: "Weight Loss", Bullets: []string{"Reduce cravings & emotional eating", "Build consistent habits", "Accountability between sessions"}},
			{Title: "Quit Smoking", Bullets: []string{"Rapid craving control", "Relapse prevention plan", "Breathing & state anchors"}},
			{Title: "Stress & Anxiety", Bullets: []string{"Calming techniques you can use anywhere", "Sleep support routines", "Cognitive reframing"}},
			{Title: "Virtual Gastric Band", Bullets: []string{"Evidence‑informed scripts", "Portion control mindset", "4‑session protocol"}},
		},
		Highlights: []Highlight{
			{Title: "Quit Smoking", Desc: "Break free from nicotine addiction in just a few sessions."},
			{Title: "Weight Loss", Desc: "Reprogram your mind for healthy eating habits."},
			{Title: "Stress Relief", Desc: "Release anxiety and embrace calmness."},
		},
		Therapies: []Therapy{
			{
				ID:       "weight-loss",
				Title:    "Weight Loss",
				Who:      "Busy professionals struggling with evening cravings and stress eating.",
				Helps:    []string{"Reduce cravings & emotional eating", "Build consistent habits", "Accountability between sessions"},
				Benefits: []string{"Down 8–15 lbs in 6–8 weeks (typical when paired with diet/exercise)", "Better sleep and energy", "Sustainable routines"},
				Testimonial: MiniQuote{
					Quote:  "Identified 3 triggers for late‑night snacking. Down 11 lbs in 6 weeks.",
					Author: "S. L.",
				},
			},
			{
				ID:       "quit-smoking",
				Title:    "Quit Smoking",
				Who:      "Long‑time smokers ready for a clean break with support and relapse prevention.",
				Helps:    []string{"Rapid craving control", "Relapse prevention plan", "Breathing & state anchors"},
				Benefits: []string{"Craving intensity drops quickly", "Clear plan for high‑risk moments", "Calmer baseline"},
				Testimonial: MiniQuote{
					Quote:  "After two sessions I stopped smoking. The calm breathing trick was a lifesaver.",
					Author: "M. M.",
				},
			},
			{
				ID:       "stress-anxiety",
				Title:    "Stress & Anxiety",
				Who:      "High‑performers dealing with overthinking, spikes, or sleep issues.",
				Helps:    []string{"Portable calming techniques", "Sleep support routines", "Cognitive reframing"},
				Benefits: []string{"Fewer spikes & faster recovery", "More focus during the day", "Better sleep"},
				Testimonial: MiniQuote{
					Quote:  "I finally have tools to ground myself during anxiety spikes.",
					Author: "J. R.",
				},
			},
			{
				ID:       "virtual-gastric-band",
				Title:    "Virtual Gastric Band",
				Who:      "Clients wanting portion control without surgery (4‑session protocol).",
				Helps:    []string{"Evidence‑informed scripts", "Portion control mindset", "Progress checks"},
				Benefits: []string{"Mindful eating becomes simpler", "Less snacking between meals", "Consistent loss when paired with plan"},
				Testimonial: MiniQuote{
					Quote:  "Felt in control at meals for the first time in years.",
					Author: "K. T.",
				},
			},
		},
		Testimonials: []Testimonial{
			{Quote: "Amazing experience… made me aware of different parts of my mind.", Author: "Shazia", Context: "General Hypnosis"},
			{Quote: "Ron personalizes his sessions — 100% organic and unscripted.", Author: "Client Review", Context: "Private Session"},
			{Quote: "Professional and effective. Helped me get back in control.", Author: "Pat", Context: "Strategy Session"},
		},
		Quotes: []string{
			"Ron helped me quit smoking after 20 years!",
			"I lost 30 lbs and feel amazing.",
			"My anxiety is gone – I sleep peacefully now.",
			"Ron is truly a miracle worker!",
		},
		Videos: []VideoReference{
			{ID: "vid1", Title: "World Hypnotism Day Demo (NLP Circle of Power)", URL: "https://www.youtube.com/watch?v=XX4JR2fKq3g"},
			{ID: "vid2", Title: "Tampa Hypnosis Center — Overview", URL: youTubeChannel},
		},
		FAQ: []FAQEntry{
			{
				Question: "How does the refundable deposit work?",
				Answer:   "It’s charged when you book and fully applied to your first package or refunded if you cancel within the policy window. Configure this later with a Paid Calendar and a Stripe product priced $$xx in GHL.",
			},
			{
				Question: "How many sessions will I need?",
				Answer:   "Most programs run 3–6 sessions depending on goals and progress. Your plan is tailored after the initial strategy session.",
			},
			{
				Question: "Can we meet virtually?",
				Answer:   "Yes, secure tele‑sessions are available. You’ll receive a join link in your confirmation email/SMS.",
			},
			{
				Question: "Is hypnosis safe?",
				Answer:   "Yes for most people. It’s a natural, focused state of attention. This is not a substitute for medical or psychological care.",
			},
		},
	}
}
