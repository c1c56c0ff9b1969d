package gtrends

import "errors"

var (
	// ErrKeywordNotSet is returned by [RegionInterest.GetFor] when the keyword
	// was not part of the list registered at build time.
	ErrKeywordNotSet = errors.New("keyword not set on client")

	// ErrClientNotBuilt is returned when a request is issued through a Client
	// that did not come out of [ClientBuilder.Build].
	ErrClientNotBuilt = errors.New("client not built")

	// ErrBadFilter is returned by [RegionInterest.WithFilter] for an unknown
	// resolution, or a sub-country resolution combined with the worldwide
	// geography.
	ErrBadFilter = errors.New("bad resolution filter")

	// ErrUnexpectedSchema is returned when a response does not match the
	// reverse-engineered wire format. The upstream API can change without
	// notice; this error marks exactly that.
	ErrUnexpectedSchema = errors.New("unexpected response schema")
)
