// Package dto defines data transfer objects for the summary feature's HTTP
// transport layer.
package dto

// SummaryUpsertReq is the request body for PUT /summary.
type SummaryUpsertReq struct {
	Date    string `json:"date" binding:"required"`
	Content string `json:"content"`
}

// SummaryItem is a summary in API responses.
type SummaryItem struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}
