package entity

import "time"

type PricingInput struct {
	CardRate       float64
	NegotiatedRate float64
	StartDate      time.Time
	EndDate        time.Time
	PrintingCost   float64
	MountingCost   float64
	GSTPercent     float64
}

type Pricing struct {
	Days            int     `json:"days"`
	CardRate        float64 `json:"card_rate"`
	EffectiveRate   float64 `json:"effective_rate"`
	DiscountAmount  float64 `json:"discount_amount"`
	DiscountPercent float64 `json:"discount_percent"`
	DisplayCost     float64 `json:"display_cost"`
	PrintingCost    float64 `json:"printing_cost"`
	MountingCost    float64 `json:"mounting_cost"`
	Subtotal        float64 `json:"subtotal"`
	GSTPercent      float64 `json:"gst_percent"`
	GST             float64 `json:"gst"`
	Total           float64 `json:"total"`
}
