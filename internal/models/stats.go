package models

// Stats reports aggregate storage counts for the stats endpoint.
type Stats struct {
	Molecules int `json:"molecules"`
	Fragments int `json:"fragments"`
}
