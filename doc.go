// gtrends: a client for the unofficial [Google Trends API].
//
// The API is undocumented and cookie-less; every query is a two-step
// exchange: explore (returns widget tokens) then one widget-data call per
// token.
//
// Instructions:
//
//  1. Construct a builder with [Client.GetBuilder], passing the keywords to
//     compare (at most 5) and a geography from the constants package
//     ([constants.COUNTRY_ALL] for worldwide).
//
//  2. Set the options through setters. (".Set[...](...)"): language,
//     category, search property, time period.
//
//  3. Build the client: [ClientBuilder.Build]. The package validates every
//     enumerated value before touching the network, then performs the
//     explore exchange and stores the widget tokens on the returned
//     [Client].
//
//  4. Wrap the client in an endpoint accessor: [NewRegionInterest],
//     optionally narrowed with [RegionInterest.WithFilter].
//
//  5. Fetch: [RegionInterest.Get] for all keywords combined,
//     [RegionInterest.GetFor] for a single registered keyword. Both return
//     a slice of [InterestForRegion], one entry per location.
//
// [Google Trends API]: https://trends.google.com/trends/
package gtrends
