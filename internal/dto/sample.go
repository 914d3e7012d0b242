package dto

import "github.com/SscSPs/currency_converter_app/internal/core/domain"

// SampleItemResponse is one element of GET /api/sample.
type SampleItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToListSampleItemResponse converts domain sample items to their DTOs.
func ToListSampleItemResponse(items []domain.SampleItem) []SampleItemResponse {
	res := make([]SampleItemResponse, len(items))
	for i, item := range items {
		res[i] = SampleItemResponse{ID: item.ID, Name: item.Name}
	}
	return res
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
