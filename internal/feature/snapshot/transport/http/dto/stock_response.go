package dto

// StockItem is one snapshot in API responses.
type StockItem struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	CurrentPrice  int64   `json:"currentPrice"`
	PreviousClose int64   `json:"previousClose"`
	DiffPrice     int64   `json:"diffPrice"`
	DiffPercent   float64 `json:"diffPercent"`
	RegisterDate  string  `json:"registerDate"`
	Issue         string  `json:"issue"`
	CategoryName  string  `json:"categoryName"`
	IsInterest    bool    `json:"isInterest"`
}

// InterestItem is one watched stock code in API responses.
type InterestItem struct {
	StockCode string `json:"stockCode"`
}
