package request

// Quote dates are calendar days, YYYY-MM-DD, end inclusive.
type Quote struct {
	CardRate       float64 `json:"card_rate" example:"90000"`
	NegotiatedRate float64 `json:"negotiated_rate" example:"75000"`
	StartDate      string  `json:"start_date" example:"2024-03-01"`
	EndDate        string  `json:"end_date" example:"2024-03-15"`
	PrintingCost   float64 `json:"printing_cost" example:"4500"`
	MountingCost   float64 `json:"mounting_cost" example:"1500"`
	GSTPercent     float64 `json:"gst_percent" example:"18"`
}
