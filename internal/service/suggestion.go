package service

import (
	"acnescan/internal/domain"
)

var genericSuggestions = []domain.TreatmentSuggestion{
	{
		Title:       "Consistent Gentle Skincare",
		Category:    domain.SuggestionCategorySkincare,
		Description: "Cleanse twice daily with a gentle, non-comedogenic cleanser and moisturize with an oil-free product.",
	},
	{
		Title:       "Sun Protection",
		Category:    domain.SuggestionCategorySkincare,
		Description: "Apply a broad-spectrum SPF 30+ sunscreen daily to prevent post-inflammatory pigmentation.",
	},
	{
		Title:       "Professional Evaluation",
		Category:    domain.SuggestionCategoryLifestyle,
		Description: "Book a dermatologist consultation for a personalized treatment plan if symptoms persist or worsen.",
	},
}

type SuggestionServiceImpl struct{}

func NewSuggestionService() *SuggestionServiceImpl {
	return &SuggestionServiceImpl{}
}

// GetByAcneType returns the curated suggestions for a classifier class
// label, falling back to generic guidance for unknown labels.
func (s *SuggestionServiceImpl) GetByAcneType(acneType string) []domain.TreatmentSuggestion {
	if suggestions, ok := treatmentCatalog[acneType]; ok {
		return suggestions
	}
	return genericSuggestions
}
