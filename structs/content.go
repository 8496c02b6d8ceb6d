package structs

// ContentUpsertRequest saves one content key across all languages in a single
// batched upsert, so a partial-language edit cannot clear other languages.
type ContentUpsertRequest struct {
	Entries map[string]string `json:"entries" validate:"required,min=1"` // lang -> content
}

type ContentResponse struct {
	Key      string            `json:"key"`
	Resolved string            `json:"resolved"`
	Lang     string            `json:"lang"`
	Entries  map[string]string `json:"entries"`
}
