package domain

import (
	"strings"
	"time"
)

type Scan struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ImageURL     string    `json:"image_url"`
	AcneType     string    `json:"acne_type"`
	Causes       []string  `json:"causes"`
	Confidence   float64   `json:"confidence"`
	Severity     string    `json:"severity"`
	AnalysisDate time.Time `json:"analysis_date"`
}

type CreateScanDTO struct {
	ImageURL   string
	AcneType   string
	Causes     []string
	Confidence float64
}

// Classification is the inference service's verdict for one image.
// The class label encodes acne type and severity as "<Type>_<Severity>",
// e.g. "Papules_Moderate".
type Classification struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// Severity extracts the severity suffix from the class label, defaulting
// to "mild" when the label carries no recognized marker.
func (c Classification) Severity() string {
	label := strings.ToLower(c.Prediction)
	switch {
	case strings.Contains(label, "severe"):
		return "severe"
	case strings.Contains(label, "moderate"):
		return "moderate"
	default:
		return "mild"
	}
}
