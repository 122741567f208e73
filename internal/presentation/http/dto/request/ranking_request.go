package request

// RankingRequest is the query string of the most_revenue / most_items endpoints
type RankingRequest struct {
	Quantity *int `form:"quantity" binding:"omitempty,min=1"`
}

// RevenueRequest is the query string of the revenue endpoints
type RevenueRequest struct {
	Date string `form:"date"`
}
