package gtrends

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/mcronce/gtrends/constants"
)

// ========================= COMPAREDGEO WIRE =========================

type regionInterestResponse struct {
	Default geoMapData `json:"default"`
}

type geoMapData struct {
	GeoMapData []InterestForRegion `json:"geoMapData"`
}

// InterestForRegion is one geographic entry of a comparedgeo payload. Values
// are on a 0-100 scale where 100 is the location with the highest share of
// searches for the term and 0 means there was not enough data. Value,
// HasData and FormattedValue are parallel arrays, one element per compared
// slot.
type InterestForRegion struct {
	Coordinates    Coordinates `json:"coordinates"`
	FormattedValue []string    `json:"formattedValue"`
	GeoName        string      `json:"geoName"`
	HasData        []bool      `json:"hasData"`
	MaxValueIndex  int         `json:"maxValueIndex"`
	Value          []int       `json:"value"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ========================= ACCESSOR =========================

// RegionInterest reads the per-location breakdown of a built query: in which
// locations the registered keywords were most popular over the requested
// period. The resolution defaults to REGION, or COUNTRY when the client was
// built for the worldwide geography.
type RegionInterest struct {
	Client     Client
	Resolution string
}

func NewRegionInterest(client Client) RegionInterest {
	res := constants.FILTER_REGION
	if client.Country == constants.COUNTRY_ALL {
		res = constants.FILTER_COUNTRY
	}
	return RegionInterest{Client: client, Resolution: res}
}

// WithFilter overrides the geographic resolution ("REGION", "DMA", "CITY",
// or "COUNTRY"). Worldwide queries only break down to country level, so any
// sub-country resolution combined with [constants.COUNTRY_ALL] is rejected.
func (r RegionInterest) WithFilter(scale string) (RegionInterest, error) {
	if !filterSet.Has(scale) {
		return r, fmt.Errorf("%w: unknown resolution %q", ErrBadFilter, scale)
	}
	if r.Client.Country == constants.COUNTRY_ALL && scale != constants.FILTER_COUNTRY {
		return r, fmt.Errorf("%w: worldwide queries resolve to %q, not %q",
			ErrBadFilter, constants.FILTER_COUNTRY, scale)
	}
	r.Resolution = scale
	return r, nil
}

// Get returns the per-region breakdown for all registered keywords combined.
func (r RegionInterest) Get() ([]InterestForRegion, error) {
	res, err := r.sendRequest()
	if err != nil {
		return nil, err
	}
	return res[0].Default.GeoMapData, nil
}

// GetFor returns the per-region breakdown for a single keyword. The keyword
// must be one of those registered at build time, else [ErrKeywordNotSet].
func (r RegionInterest) GetFor(keyword string) ([]InterestForRegion, error) {
	index := slices.Index(r.Client.Keywords, keyword)
	if index == -1 {
		return nil, fmt.Errorf("%w: %q", ErrKeywordNotSet, keyword)
	}

	res, err := r.sendRequest()
	if err != nil {
		return nil, err
	}
	// Slot 0 is the combined entry; keyword slots follow in registration
	// order.
	return res[index+1].Default.GeoMapData, nil
}

// sendRequest fetches one comparedgeo payload per widget, in explore order:
// [combined, keyword0, keyword1, ...].
func (r RegionInterest) sendRequest() ([]regionInterestResponse, error) {
	widgets, err := r.Client.geoMapWidgets()
	if err != nil {
		return nil, err
	}

	res := make([]regionInterestResponse, 0, len(widgets))
	for _, w := range widgets {
		payload, err := r.fetchWidget(w)
		if err != nil {
			return nil, err
		}
		res = append(res, payload)
	}
	return res, nil
}

func (r RegionInterest) fetchWidget(w widget) (res regionInterestResponse, err error) {
	// The explore-returned request goes back verbatim, with the requested
	// resolution injected.
	var widgetReq map[string]any
	if err = json.Unmarshal(w.Request, &widgetReq); err != nil {
		err = fmt.Errorf("%w: %v", ErrUnexpectedSchema, err)
		return
	}
	widgetReq["resolution"] = r.Resolution
	reqJson, err := json.Marshal(widgetReq)
	if err != nil {
		return
	}

	params := url.Values{}
	params.Set("hl", r.Client.lang)
	params.Set("tz", timezoneOffset)
	params.Set("req", string(reqJson))
	params.Set("token", w.Token)

	res, err = getJSON[regionInterestResponse](comparedGeoPath, params)
	if err != nil {
		return
	}
	for i := range res.Default.GeoMapData {
		fixMaxValueIndex(&res.Default.GeoMapData[i])
	}
	return
}

// ========================= AUXILIARY FUNC =========================

// fixMaxValueIndex recomputes MaxValueIndex locally when the wire value does
// not point inside the value array.
func fixMaxValueIndex(e *InterestForRegion) {
	if len(e.Value) > 0 && (e.MaxValueIndex < 0 || e.MaxValueIndex >= len(e.Value)) {
		e.MaxValueIndex = argmax(e.Value)
	}
}

func argmax[T constraints.Ordered](values []T) int {
	index := 0
	for i, v := range values {
		if v > values[index] {
			index = i
		}
	}
	return index
}
