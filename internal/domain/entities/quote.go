package entities

import "time"

// QuoteSubmission is a submitted estimate request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The configuration is stored as a full snapshot and the estimate fields
// hold the server-side computation at submit time; the service never trusts
// a price sent by the client.

type QuoteSubmission struct {
	ID            string               `json:"id"`
	UserEmail     string               `json:"user_email"`
	Configuration ProjectConfiguration `json:"configuration"`
	EstimatePrice float64              `json:"estimate_price"`
	DeliveryRange string               `json:"delivery_range"`
	CreatedAt     time.Time            `json:"created_at"`
}
