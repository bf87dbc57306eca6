package entities

// Estimate is the price/delivery projection derived from a
// ProjectConfiguration.
//
// It is a pure function of the configuration and is never stored on its
// own: holders recompute it on read so it cannot drift from the
// configuration that produced it. The persisted copy on QuoteSubmission is
// a snapshot of what the customer was shown at submit time.

type Estimate struct {
	Price         float64 `json:"price"`
	DeliveryRange string  `json:"delivery_range"`
}
