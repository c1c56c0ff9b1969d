package gtrends

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mcronce/gtrends/constants"
)

// ========================= EXPLORE WIRE =========================

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Geo     string `json:"geo"`
	Time    string `json:"time"`
}

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

// A widget is one tokenized sub-query handed out by the explore endpoint.
// Request is kept raw: it goes back to Google verbatim on the widget-data
// call and its inner shape drifts upstream.
type widget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

type exploreResponse struct {
	Widgets []widget `json:"widgets"`
}

// Widget IDs are the widget kind, suffixed with the comparison-item index for
// per-keyword widgets ("GEO_MAP", "GEO_MAP_0", "GEO_MAP_1", ...).
const geoMapWidgetID = "GEO_MAP"

// ========================= CLIENT =========================

// A Client is an immutable, finalized query against the Trends API: the
// registered keywords, the geography and search options, and the widget
// tokens obtained from the explore endpoint. Obtain one through
// [ClientBuilder.Build]; every request issued through a zero Client fails
// with [ErrClientNotBuilt].
type Client struct {
	Keywords []string
	Country  string

	lang     string
	category int
	property string
	period   string

	widgets []widget
	built   bool
}

// Usage:
//
//	builder := Client{}.GetBuilder([]string{"hacker"}, constants.COUNTRY_US)
func (Client) GetBuilder(keywords []string, country string) ClientBuilder {
	return ClientBuilder{
		client: Client{
			Keywords: keywords,
			Country:  country,
			lang:     constants.LANG_ENGLISH_US,
			category: constants.CATEGORY_ALL,
			property: constants.PROPERTY_WEB,
			period:   constants.PERIOD_PAST_12_MONTHS,
		},
	}
}

func (c *Client) validate() error {
	switch {
	case len(c.Keywords) == 0:
		return fmt.Errorf("at least one keyword is required")
	case len(c.Keywords) > maxKeywords:
		return fmt.Errorf("at most %d keywords can be compared, got %d", maxKeywords, len(c.Keywords))
	case !countrySet.Has(c.Country):
		return fmt.Errorf("bad `geo`: %q is not an ISO 3166-1 alpha-2 code", c.Country)
	case !langSet.Has(c.lang):
		return fmt.Errorf("bad `hl`: %q", c.lang)
	case !categorySet.Has(c.category):
		return fmt.Errorf("bad `category`: %d", c.category)
	case !propertySet.Has(c.property):
		return fmt.Errorf("bad `property`: %q", c.property)
	}

	for _, kw := range c.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("blank keyword")
		}
	}

	if !periodSet.Has(c.period) {
		return validateCustomPeriod(c.period)
	}
	return nil
}

// explore exchanges the validated query for widget tokens.
func (c *Client) explore() error {
	items := make([]comparisonItem, 0, len(c.Keywords))
	for _, kw := range c.Keywords {
		items = append(items, comparisonItem{Keyword: kw, Geo: c.Country, Time: c.period})
	}
	reqJson, err := json.Marshal(exploreRequest{
		ComparisonItem: items,
		Category:       c.category,
		Property:       c.property,
	})
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Set("hl", c.lang)
	params.Set("tz", timezoneOffset)
	params.Set("req", string(reqJson))

	res, err := getJSON[exploreResponse](explorePath, params)
	if err != nil {
		return err
	}
	c.widgets = res.Widgets
	c.built = true
	return nil
}

// geoMapWidgets returns the comparedgeo widgets in explore order: the
// combined widget first, then one per keyword in registration order.
func (c *Client) geoMapWidgets() ([]widget, error) {
	if !c.built {
		return nil, ErrClientNotBuilt
	}

	var ws []widget
	for _, w := range c.widgets {
		if strings.HasPrefix(w.ID, geoMapWidgetID) {
			ws = append(ws, w)
		}
	}
	if len(ws) != len(c.Keywords)+1 {
		return nil, fmt.Errorf("%w: %d comparedgeo widgets for %d keywords",
			ErrUnexpectedSchema, len(ws), len(c.Keywords))
	}
	return ws, nil
}
