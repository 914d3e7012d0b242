package domain

// SampleItem is a row of the sample_items table served by /api/sample.
type SampleItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
