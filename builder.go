package gtrends

import (
	"fmt"
	"strings"
	"time"
)

// ========================= CLIENT BUILDER =========================

type ClientBuilder struct {
	client Client
}

func (b *ClientBuilder) SetLang(lang string) *ClientBuilder {
	b.client.lang = lang
	return b
}

func (b *ClientBuilder) SetCategory(category int) *ClientBuilder {
	b.client.category = category
	return b
}

func (b *ClientBuilder) SetProperty(property string) *ClientBuilder {
	b.client.property = property
	return b
}

func (b *ClientBuilder) SetPeriod(period string) *ClientBuilder {
	b.client.period = period
	return b
}

// Usage:
//
//	builder.SetCustomPeriod("2022-01-01", "2022-12-31")
func (b *ClientBuilder) SetCustomPeriod(start string, end string) *ClientBuilder {
	b.client.period = start + " " + end
	return b
}

// Build validates every field of the query, then performs the explore
// exchange. The returned Client holds the widget tokens the endpoint
// accessors need; it is the only way to obtain a usable Client.
func (b *ClientBuilder) Build() (client Client, err error) {
	client = b.client
	if err = client.validate(); err != nil {
		return
	}
	err = client.explore()
	return
}

// ========================= AUXILIARY FUNC =========================

// Custom periods travel as "YYYY-MM-DD YYYY-MM-DD". Both ends are required;
// Trends has no open-ended custom ranges.
func validateCustomPeriod(period string) error {
	start, end, ok := strings.Cut(period, " ")
	if !ok {
		return fmt.Errorf("bad `time`: %q is neither a predefined period nor a custom range", period)
	}

	s, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return fmt.Errorf("bad date format: %v", err)
	}
	e, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return fmt.Errorf("bad date format: %v", err)
	}
	if s.After(e) {
		return fmt.Errorf("bad range: %v > %v", s, e)
	}
	return nil
}
