package service

import (
	"testing"

	"acnescan/internal/domain"
)

func TestGetByAcneType_KnownLabels(t *testing.T) {
	svc := NewSuggestionService()

	labels := []string{
		"Blackheads_Mild", "Blackheads_Moderate", "Blackheads_Severe",
		"Whiteheads_Mild", "Whiteheads_Moderate", "Whiteheads_Severe",
		"Papules_Mild", "Papules_Moderate", "Papules_Severe",
		"Pustules_Mild", "Pustules_Moderate", "Pustules_Severe",
		"Nodular_Mild", "Nodular_Moderate", "Nodular_Severe",
		"Cystic_Mild", "Cystic_Moderate", "Cystic_Severe",
	}

	for _, label := range labels {
		suggestions := svc.GetByAcneType(label)
		if len(suggestions) == 0 {
			t.Errorf("no suggestions for %q", label)
			continue
		}
		for _, s := range suggestions {
			if s.Title == "" || s.Description == "" {
				t.Errorf("incomplete suggestion for %q: %+v", label, s)
			}
			if s.Category != domain.SuggestionCategorySkincare && s.Category != domain.SuggestionCategoryLifestyle {
				t.Errorf("unexpected category for %q: %q", label, s.Category)
			}
		}
	}
}

func TestGetByAcneType_UnknownLabelFallsBack(t *testing.T) {
	svc := NewSuggestionService()

	for _, label := range []string{"", "Rosacea_Mild", "blackheads_mild"} {
		suggestions := svc.GetByAcneType(label)
		if len(suggestions) != len(genericSuggestions) {
			t.Errorf("expected generic suggestions for %q, got %d entries", label, len(suggestions))
		}
	}
}

func TestClassificationSeverity(t *testing.T) {
	tests := []struct {
		prediction string
		want       string
	}{
		{"Cystic_Severe", "severe"},
		{"Papules_Moderate", "moderate"},
		{"Blackheads_Mild", "mild"},
		{"Blackheads", "mild"},
		{"", "mild"},
	}

	for _, tt := range tests {
		c := domain.Classification{Prediction: tt.prediction}
		if got := c.Severity(); got != tt.want {
			t.Errorf("Severity(%q) = %q, want %q", tt.prediction, got, tt.want)
		}
	}
}
