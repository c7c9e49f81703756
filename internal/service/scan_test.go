package service

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"acnescan/internal/domain"
)

func TestScanService_GetByID_DerivesSeverity(t *testing.T) {
	repo := &fakeScanRepo{scans: map[int64]*domain.Scan{
		21: {ID: 21, UserID: 7, AcneType: "Blackheads_Moderate"},
	}}
	svc := NewScanService(repo, nil, nil, zap.NewNop())

	scan, err := svc.GetByID(context.Background(), 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scan.Severity != "moderate" {
		t.Errorf("severity: got %q, want %q", scan.Severity, "moderate")
	}
}

func TestScanService_ListByUserID_DerivesSeverity(t *testing.T) {
	repo := &fakeScanRepo{scans: map[int64]*domain.Scan{
		21: {ID: 21, UserID: 7, AcneType: "Cystic_Severe"},
		22: {ID: 22, UserID: 7, AcneType: "Whiteheads"},
		23: {ID: 23, UserID: 9, AcneType: "Papules_Moderate"},
	}}
	svc := NewScanService(repo, nil, nil, zap.NewNop())

	scans, err := svc.ListByUserID(context.Background(), 7, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("expected 2 scans, got %d", len(scans))
	}
	if scans[0].Severity != "severe" {
		t.Errorf("scan 21 severity: got %q, want %q", scans[0].Severity, "severe")
	}
	if scans[1].Severity != "mild" {
		t.Errorf("scan 22 severity: got %q, want %q", scans[1].Severity, "mild")
	}
}

func TestPossibleCauses_FamilyExtraction(t *testing.T) {
	tests := []struct {
		acneType string
		want     []string
	}{
		{"Blackheads_Moderate", causesByType["blackheads"]},
		{"blackheads_mild", causesByType["blackheads"]},
		{"Cystic_Severe", causesByType["cystic"]},
		{"Papules", causesByType["papules"]},
		{"Rosacea_Mild", defaultCauses},
		{"", defaultCauses},
	}

	for _, tt := range tests {
		got := possibleCauses(tt.acneType)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("possibleCauses(%q) = %v, want %v", tt.acneType, got, tt.want)
		}
	}
}

func TestPossibleCauses_AlwaysThree(t *testing.T) {
	for _, label := range []string{"Blackheads_Mild", "Whiteheads_Severe", "Nodular_Moderate", "Unknown"} {
		if got := possibleCauses(label); len(got) != 3 {
			t.Errorf("possibleCauses(%q) returned %d causes, want 3", label, len(got))
		}
	}
}
