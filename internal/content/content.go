// Package content holds the immutable content the landing page is rendered
// from: therapy programs, testimonials, video links, FAQ entries and the
// business record used for contact details and structured data.
package content

// Therapy represents one program in the "Clients & Outcomes" section
type Therapy struct {
	ID          string    `mapstructure:"id" json:"id"`
	Title       string    `mapstructure:"title" json:"title"`
	Who         string    `mapstructure:"who" json:"who"`
	Helps       []string  `mapstructure:"helps" json:"helps"`
	Benefits    []string  `mapstructure:"benefits" json:"benefits"`
	Testimonial MiniQuote `mapstructure:"testimonial" json:"testimonial"`
}

// MiniQuote is the short quote embedded in a therapy card
type MiniQuote struct {
	Quote  string `mapstructure:"quote" json:"quote"`
	Author string `mapstructure:"author" json:"author"` // initials only
}

// Service is a short specialty card: a title and a few bullets
type Service struct {
	Title   string   `mapstructure:"title" json:"title"`
	Bullets []string `mapstructure:"bullets" json:"bullets"`
}

// Highlight is a one-line benefit card
type Highlight struct {
	Title string `mapstructure:"title" json:"title"`
	Desc  string `mapstructure:"desc" json:"desc"`
}

// Testimonial represents a client story with its context label
type Testimonial struct {
	Quote   string `mapstructure:"quote" json:"quote"`
	Author  string `mapstructure:"author" json:"author"`
	Context string `mapstructure:"context" json:"context"`
}

// VideoReference points at an externally hosted video
type VideoReference struct {
	ID        string `mapstructure:"id" json:"id"`
	Title     string `mapstructure:"title" json:"title"`
	URL       string `mapstructure:"url" json:"url"`
	Thumbnail string `mapstructure:"thumbnail" json:"thumbnail,omitempty"`
}

// FAQEntry is one question/answer pair
type FAQEntry struct {
	Question string `mapstructure:"question" json:"question"`
	Answer   string `mapstructure:"answer" json:"answer"`
}

// Address is the postal address of the practice
type Address struct {
	Street     string `mapstructure:"street" json:"street"`
	Locality   string `mapstructure:"locality" json:"locality"`
	Region     string `mapstructure:"region" json:"region"`
	PostalCode string `mapstructure:"postal_code" json:"postal_code"`
	Country    string `mapstructure:"country" json:"country"`
}

// Line returns the address formatted on a single line
func (a Address) Line() string {
	return a.Street + ", " + a.Locality + ", " + a.Region + " " + a.PostalCode
}

// Business describes the practice itself
type Business struct {
	Name           string  `mapstructure:"name" json:"name"`
	Person         string  `mapstructure:"person" json:"person"`
	Credentials    string  `mapstructure:"credentials" json:"credentials"`
	Phone          string  `mapstructure:"phone" json:"phone"` // display form, e.g. (813) 919-5884
	Email          string  `mapstructure:"email" json:"email,omitempty"`
	Address        Address `mapstructure:"address" json:"address"`
	SiteURL        string  `mapstructure:"site_url" json:"site_url"`
	ImageURL       string  `mapstructure:"image_url" json:"image_url"`
	YouTubeChannel string  `mapstructure:"youtube_channel" json:"youtube_channel"`
	AreaServed     string  `mapstructure:"area_served" json:"area_served"`
	Since          int     `mapstructure:"since" json:"since"`
	Deposit        string  `mapstructure:"deposit" json:"deposit"`
}

// Catalog is the full set of content one page is rendered from.
// A loaded Catalog is never mutated; a reload replaces the whole value.
type Catalog struct {
	Business     Business         `mapstructure:"business" json:"business"`
	Services     []Service        `mapstructure:"services" json:"services"`
	Highlights   []Highlight      `mapstructure:"highlights" json:"highlights"`
	Therapies    []Therapy        `mapstructure:"therapies" json:"therapies"`
	Testimonials []Testimonial    `mapstructure:"testimonials" json:"testimonials"`
	Quotes       []string         `mapstructure:"quotes" json:"quotes"`
	Videos       []VideoReference `mapstructure:"videos" json:"videos"`
	FAQ          []FAQEntry       `mapstructure:"faq" json:"faq"`
}

// FeaturedVideo returns the first video of the gallery, if any
func (c *Catalog) FeaturedVideo() (VideoReference, bool) {
	if len(c.Videos) == 0 {
		return VideoReference{}, false
	}
	return c.Videos[0], true
}
