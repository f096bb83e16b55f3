// Package schema emits the schema.org LocalBusiness record that search
// engines read from the page.
package schema

import (
	"encoding/json"
	"fmt"

	"hypnosis-landing/internal/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PostalAddress is the schema.org PostalAddress shape
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// Record is the schema.org LocalBusiness shape
type Record struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	Name       string        `json:"name"`
	Image      string        `json:"image"`
	URL        string        `json:"url"`
	Telephone  string        `json:"telephone"`
	Address    PostalAddress `json:"address"`
	AreaServed string        `json:"areaServed"`
	SameAs     []string      `json:"sameAs"`
}

// LocalBusiness builds the record from the business content.
// The telephone is the E.164 form of the displayed phone.
func LocalBusiness(b content.Business) (Record, error) {
	tel, err := b.PhoneE164()
	if err != nil {
		return Record{}, fmt.Errorf("failed to normalise business phone: %w", err)
	}

	sameAs := []string{}
	if b.YouTubeChannel != "" {
		sameAs = append(sameAs, b.YouTubeChannel)
	}

	return Record{
		Context:   "https://schema.org",
		Type:      "LocalBusiness",
		Name:      b.Name,
		Image:     b.ImageURL,
		URL:       b.SiteURL,
		Telephone: tel,
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   b.Address.Street,
			AddressLocality: b.Address.Locality,
			AddressRegion:   b.Address.Region,
			PostalCode:      b.Address.PostalCode,
			AddressCountry:  b.Address.Country,
		},
		AreaServed: b.AreaServed,
		SameAs:     sameAs,
	}, nil
}

// Script wraps the record in a JSON-LD script tag. encoding/json escapes
// <, > and & so the payload cannot close the tag early.
func Script(rec Record) (g.Node, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode structured data: %w", err)
	}
	return h.Script(h.Type("application/ld+json"), g.Raw(string(data))), nil
}
