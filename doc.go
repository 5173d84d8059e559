// Package ticker provides a small in-memory stock-market ticker: it tracks a
// fixed universe of stocks, records buy/sell trades against them, and derives
// per-stock valuation metrics together with a market-wide share index.
//
// The core functionalities include:
//   - Trade Recording: appending immutable, time-stamped buy/sell trades to a
//     per-stock ledger, in recording order.
//   - Valuation: computing the volume-weighted price, the dividend yield and
//     the P/E ratio of a stock from the trades of the last fifteen minutes,
//     as of an explicit point in time.
//   - Market Index: aggregating all stock prices into the GBCE All Share
//     Index (geometric mean of prices).
//   - Reporting: building a point-in-time market report that the renderer
//     package turns into a human-readable table.
//
// Everything lives in process memory for the duration of one session; the
// only file ever read is an optional universe configuration. All valuation
// functions are pure: they take the reference time as an argument and never
// consult the wall clock, so the same ledger and the same instant always
// yield the same numbers.
//
// This package serves as the foundational logic for the `gbce` command-line
// tool.
package ticker
