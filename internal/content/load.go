package content

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/nyaruka/phonenumbers"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrInvalidCatalog is wrapped by every validation failure of a Catalog
var ErrInvalidCatalog = errors.New("invalid catalog")

// defaultRegion is used to parse phone numbers written without a country code
const defaultRegion = "US"

// Load reads a content file (any format viper understands) and returns the
// resulting catalog. Top-level keys missing from the file keep the built-in
// content. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var file Catalog
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse content file: %w", err)
	}

	// Whole sections are replaced, never merged element by element
	c := Default()
	if v.IsSet("business") {
		c.Business = file.Business
	}
	if v.IsSet("services") {
		c.Services = file.Services
	}
	if v.IsSet("highlights") {
		c.Highlights = file.Highlights
	}
	if v.IsSet("therapies") {
		c.Therapies = file.Therapies
	}
	if v.IsSet("testimonials") {
		c.Testimonials = file.Testimonials
	}
	if v.IsSet("quotes") {
		c.Quotes = file.Quotes
	}
	if v.IsSet("videos") {
		c.Videos = file.Videos
	}
	if v.IsSet("faq") {
		c.FAQ = file.FAQ
	}

	logrus.WithFields(logrus.Fields{
		"path":      path,
		"therapies": len(c.Therapies),
		"videos":    len(c.Videos),
		"faq":       len(c.FAQ),
	}).Info("Content file loaded")

	return c, nil
}

// Validate checks the invariants the page relies on: identifiers are present
// and unique, video links are absolute, and the business phone parses.
func (c *Catalog) Validate() error {
	if c.Business.Name == "" {
		return fmt.Errorf("%w: business name is empty", ErrInvalidCatalog)
	}
	if _, err := c.Business.PhoneE164(); err != nil {
		return fmt.Errorf("%w: business phone: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[string]bool, len(c.Therapies))
	for i, t := range c.Therapies {
		if t.ID == "" {
			return fmt.Errorf("%w: therapy %d has no id", ErrInvalidCatalog, i)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate therapy id %q", ErrInvalidCatalog, t.ID)
		}
		seen[t.ID] = true
	}

	seen = make(map[string]bool, len(c.Videos))
	for i, v := range c.Videos {
		if v.ID == "" {
			return fmt.Errorf("%w: video %d has no id", ErrInvalidCatalog, i)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: duplicate video id %q", ErrInvalidCatalog, v.ID)
		}
		seen[v.ID] = true
		if !isAbsoluteHTTP(v.URL) {
			return fmt.Errorf("%w: video %q url %q is not an absolute http(s) url", ErrInvalidCatalog, v.ID, v.URL)
		}
	}

	for i, f := range c.FAQ {
		if f.Question == "" || f.Answer == "" {
			return fmt.Errorf("%w: faq entry %d is incomplete", ErrInvalidCatalog, i)
		}
	}
	return nil
}

// PhoneE164 returns the business phone in E.164 form (+18139195884)
func (b Business) PhoneE164() (string, error) {
	num, err := phonenumbers.Parse(b.Phone, defaultRegion)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%q is not a valid phone number", b.Phone)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// TelURI returns the tel: link for the business phone. It falls back to the
// raw display value when the phone cannot be parsed.
func (b Business) TelURI() string {
	e164, err := b.PhoneE164()
	if err != nil {
		return "tel:" + b.Phone
	}
	return "tel:" + e164
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
