package domain

type SuggestionCategory string

const (
	SuggestionCategorySkincare  SuggestionCategory = "skincare"
	SuggestionCategoryLifestyle SuggestionCategory = "lifestyle"
)

type TreatmentSuggestion struct {
	Title       string             `json:"title"`
	Category    SuggestionCategory `json:"category"`
	Description string             `json:"description"`
}
