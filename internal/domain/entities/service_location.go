package entities

// ServiceLocation is one branch office from the bundled dataset.
//
// The dataset is loaded once at startup and is read-only afterwards; the
// nearest-branch search depends on the list order being stable for
// deterministic tie-breaking.

type ServiceLocation struct {
	City           string  `json:"city"`
	State          string  `json:"state"`
	Category       string  `json:"category"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DisplayPhone   string  `json:"display_phone"`
	DisplayAddress string  `json:"display_address"`
	Headquarters   bool    `json:"headquarters,omitempty"`
}
