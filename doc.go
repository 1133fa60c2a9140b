// Package navlog keeps a local, human-readable history of fund reference prices
// (基準価額) scraped from public fund pages.
//
// The core functionalities include:
//   - Registry: reading the list of tracked funds (id, page URL, status) from a CSV file.
//   - History: a CSV time series with one row per fetch cycle and two columns per fund,
//     the price and the as-of date it was published for. Merging a new fetch cycle
//     replaces any row that already holds the same (fund, as-of date).
//   - Returns: day over day changes computed from the history.
//
// Pages are fetched and parsed by the scrape package, the nav command ties
// everything together.
package navlog
