// Package dto defines data transfer objects for the snapshot feature's HTTP
// transport layer.
package dto

// StockSubmitReq is the request body for creating a stock snapshot.
// CurrentPrice and PreviousClose are the historical overrides; they are
// ignored when RegisterDate is today because the live quote wins. Pointers
// keep an absent field distinguishable from an explicit zero.
type StockSubmitReq struct {
	Code          string `json:"code" binding:"required"`
	CategoryName  string `json:"categoryName"`
	RegisterDate  string `json:"registerDate" binding:"required"`
	IsInterest    bool   `json:"isInterest"`
	Issue         string `json:"issue"`
	CurrentPrice  *int64 `json:"currentPrice"`
	PreviousClose *int64 `json:"previousClose"`
}

// StockEditReq is the request body for editing an existing snapshot. The
// code and date are fixed at creation, so only the editable fields appear.
// Omitted prices keep the stored values.
type StockEditReq struct {
	CategoryName  string `json:"categoryName"`
	IsInterest    bool   `json:"isInterest"`
	Issue         string `json:"issue"`
	CurrentPrice  *int64 `json:"currentPrice"`
	PreviousClose *int64 `json:"previousClose"`
}
