package ui

import (
	"strings"
	"testing"

	"hypnosis-landing/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := html.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasIcon(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "svg" && attr(n, "data-icon") == name
	}
}

func TestTestimonialCardAlwaysFiveStars(t *testing.T) {
	inputs := []content.Testimonial{
		{},
		{Quote: "Short", Author: "A"},
		{Quote: strings.Repeat("long ", 200), Author: "B", Context: "Private Session"},
	}
	for _, in := range inputs {
		doc := render(t, TestimonialCard(in))
		stars := findAll(doc, hasIcon(IconStar))
		assert.Len(t, stars, RatingStars)
	}
}

func TestTherapyCardBulletCounts(t *testing.T) {
	for _, th := range content.Default().Therapies {
		doc := render(t, TherapyCard(th, "text-emerald-600", "bg-indigo-600"))

		lists := findAll(doc, func(n *html.Node) bool {
			return n.Type == html.ElementNode && attr(n, "data-list") != ""
		})
		require.Len(t, lists, 2, th.ID)

		for _, list := range lists {
			items := findAll(list, func(n *html.Node) bool {
				return n.Type == html.ElementNode && n.Data == "li"
			})
			switch attr(list, "data-list") {
			case "helps":
				assert.Len(t, items, len(th.Helps), th.ID)
			case "benefits":
				assert.Len(t, items, len(th.Benefits), th.ID)
			}
		}
	}
}

func TestTherapyCardEmptyLists(t *testing.T) {
	doc := render(t, TherapyCard(content.Therapy{ID: "x", Title: "X"}, "", ""))
	items := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "li"
	})
	assert.Empty(t, items)
}

func TestServiceCard(t *testing.T) {
	s := content.Service{Title: "Quit Smoking", Bullets: []string{"a", "b", "c"}}
	doc := render(t, ServiceCard(s, "text-emerald-600"))
	items := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "li"
	})
	assert.Len(t, items, 3)
	assert.Len(t, findAll(doc, hasIcon(IconCheck)), 3)
}

func TestVideoThumb(t *testing.T) {
	v := content.VideoReference{ID: "v", Title: "Demo", URL: "https://www.youtube.com/watch?v=abc"}
	doc := render(t, VideoThumb(v))

	links := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a"
	})
	require.Len(t, links, 1)
	assert.Equal(t, v.URL, attr(links[0], "href"))
	assert.Equal(t, "_blank", attr(links[0], "target"))
	assert.Equal(t, "noreferrer", attr(links[0], "rel"))
	assert.Len(t, findAll(doc, hasIcon(IconPlay)), 1)

	v.Thumbnail = "https://i.ytimg.com/vi/abc/hqdefault.jpg"
	doc = render(t, VideoThumb(v))
	imgs := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "img"
	})
	require.Len(t, imgs, 1)
	assert.Equal(t, v.Thumbnail, attr(imgs[0], "src"))
}

func TestQuoteCard(t *testing.T) {
	var b strings.Builder
	require.NoError(t, QuoteCard("Hello", 3).Render(&b))
	assert.Contains(t, b.String(), "– Client 3")
	assert.Contains(t, b.String(), "“Hello”")
}

func TestFAQItemEscapesText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, FAQItem(content.FAQEntry{Question: "<b>?</b>", Answer: "a & b"}).Render(&b))
	assert.Contains(t, b.String(), "&lt;b&gt;?&lt;/b&gt;")
	assert.Contains(t, b.String(), "a &amp; b")
}

func TestSectionID(t *testing.T) {
	doc := render(t, Section("faq", "bg-white"))
	sections := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "section"
	})
	require.Len(t, sections, 1)
	assert.Equal(t, "faq", attr(sections[0], "id"))
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=XX4JR2fKq3g", "https://www.youtube-nocookie.com/embed/XX4JR2fKq3g"},
		{"https://youtu.be/XX4JR2fKq3g", "https://www.youtube-nocookie.com/embed/XX4JR2fKq3g"},
		{"https://www.youtube.com/embed/abc", "https://www.youtube-nocookie.com/embed/abc"},
		{"https://www.youtube.com/user/TampaHypnosis", "https://www.youtube.com/user/TampaHypnosis"},
		{"https://vimeo.com/1", "https://vimeo.com/1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EmbedURL(tt.in), tt.in)
	}
}
