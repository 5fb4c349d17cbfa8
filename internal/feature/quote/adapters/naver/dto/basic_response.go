// Package dto defines the wire types for the Naver mobile quote API.
package dto

// BasicResponse is the subset of the stock basic endpoint the fetcher reads.
// Prices arrive as comma-grouped strings ("73,400").
type BasicResponse struct {
	ItemCode           string `json:"itemCode"`
	StockName          string `json:"stockName"`
	ClosePrice         string `json:"closePrice"`
	PreviousClosePrice string `json:"previousClosePrice"`
}
