package request

// RefreshRequest is the request body for refreshing the dataset.
// A zero or omitted season means the current season
type RefreshRequest struct {
	Season int `json:"season,omitempty"`
}
