package models

// Offer is a promotional banner line shown on the homepage. Display
// order is insertion order.
type Offer struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
