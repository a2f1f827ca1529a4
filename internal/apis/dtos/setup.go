package dtos

type SetupRequest struct {
	Seed *bool `json:"seed"`
}

// SeedReport lists how many records went into each collection and which
// sample-data keys were skipped.
type SeedReport struct {
	Inserted map[string]int `json:"inserted"`
	Skipped  []string       `json:"skipped"`
}

type SetupResponse struct {
	Dropped     []string    `json:"dropped"`
	Provisioned []string    `json:"provisioned"`
	Seed        *SeedReport `json:"seed,omitempty"`
}
