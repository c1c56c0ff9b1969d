package gtrends

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mcronce/gtrends/constants"
)

const API_BASE_URL = "https://trends.google.com"

const (
	explorePath     = "/trends/api/explore"
	comparedGeoPath = "/trends/api/widgetdata/comparedgeo"
)

// Frontend default. The value only shifts which UTC offset the time buckets
// are aligned to.
const timezoneOffset = "-120"

// Google caps a comparison at 5 items.
const maxKeywords = 5

var (
	countrySet  = sets.New(constants.CountryValues...)
	langSet     = sets.New(constants.LangValues...)
	categorySet = sets.New(constants.CategoryValues...)
	propertySet = sets.New(constants.PropertyValues...)
	periodSet   = sets.New(constants.PeriodValues...)
	filterSet   = sets.New(constants.FilterValues...)
)

// Overridable for tests.
type apiBaseUrlManager struct {
	url string
	mu  sync.RWMutex
}

var apiBaseUrl = apiBaseUrlManager{url: API_BASE_URL}

func GetAPIBaseUrl() string {
	apiBaseUrl.mu.RLock()
	defer apiBaseUrl.mu.RUnlock()
	return apiBaseUrl.url
}

func SetAPIBaseUrl(url string) {
	apiBaseUrl.mu.Lock()
	defer apiBaseUrl.mu.Unlock()
	apiBaseUrl.url = url
}

// getJSON issues one GET against the Trends API and decodes the body into T
// after dropping the anti-hijacking breaker line.
func getJSON[T any](path string, params url.Values) (res T, err error) {
	req, _ := http.NewRequest("GET", GetAPIBaseUrl()+path+"?"+params.Encode(), nil)
	slog.Debug(fmt.Sprintf("GET %s", GetAPIBaseUrl()+path))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return
	} else if details, ok := httpStatusMap[resp.StatusCode]; ok {
		slog.Error(fmt.Sprintf("%d — %s", resp.StatusCode, details))
		err = fmt.Errorf("%d", resp.StatusCode)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if err = json.Unmarshal(stripBreaker(body), &res); err != nil {
		err = fmt.Errorf("%w: %v", ErrUnexpectedSchema, err)
	}
	return
}

// Every JSON endpoint prefixes its body with a breaker line ()]}' on explore,
// )]}', on widget data) that must go before decoding.
func stripBreaker(body []byte) []byte {
	if i := bytes.IndexByte(body, '\n'); i >= 0 && bytes.HasPrefix(body, []byte(")]}'")) {
		return body[i+1:]
	}
	return body
}
