// Package entity defines the domain entities for the quote feature.
package entity

// Quote is one live observation of a stock's price from the market data
// source. A zero-value Name signals an unknown stock code; the fetcher
// reports that case without an error so callers decide how to reject it.
type Quote struct {
	// Code is the exchange stock code the quote was fetched for.
	Code string

	// Name is the listed company name, empty when the code is unknown.
	Name string

	// CurrentPrice is the latest traded price in won.
	CurrentPrice int64

	// PreviousClose is the prior session's closing price in won.
	PreviousClose int64
}
