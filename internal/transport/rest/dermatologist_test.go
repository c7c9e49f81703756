package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acnescan/config"
	"acnescan/internal/domain"
	"acnescan/internal/service"
)

type stubDermatologistService struct {
	lastFilter domain.DirectoryFilter
	result     []domain.Dermatologist
	total      int
}

func (s *stubDermatologistService) GetByID(ctx context.Context, id int64) (*domain.Dermatologist, error) {
	for i := range s.result {
		if s.result[i].ID == id {
			return &s.result[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubDermatologistService) List(ctx context.Context, filter domain.DirectoryFilter) ([]domain.Dermatologist, int, error) {
	s.lastFilter = filter
	return s.result, s.total, nil
}

func newDirectoryTestRouter(stub *stubDermatologistService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&service.Services{Dermatologist: stub}, zap.NewNop(), &config.Config{})

	router := gin.New()
	handler.InitRoutes(router)
	return router
}

func TestGetDermatologists_PassesFilterThrough(t *testing.T) {
	stub := &stubDermatologistService{
		result: []domain.Dermatologist{{ID: 1, Name: "Dr. Sarah Johnson", Location: "Boston, MA"}},
		total:  8,
	}
	router := newDirectoryTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dermatologists/?location=MA&availability=in-person&sort_by=location", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body: %s", w.Code, w.Body.String())
	}

	if stub.lastFilter.Location != "MA" {
		t.Errorf("location not passed through: %q", stub.lastFilter.Location)
	}
	if stub.lastFilter.Availability != domain.AvailabilityInPerson {
		t.Errorf("availability not passed through: %q", stub.lastFilter.Availability)
	}
	if stub.lastFilter.SortBy != domain.DirectorySortByLocation {
		t.Errorf("sort key not passed through: %q", stub.lastFilter.SortBy)
	}

	var body directoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.MatchCount != 1 || body.TotalCount != 8 {
		t.Errorf("unexpected counts: %d of %d", body.MatchCount, body.TotalCount)
	}
}

func TestGetDermatologists_DefaultsApplied(t *testing.T) {
	stub := &stubDermatologistService{}
	router := newDirectoryTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dermatologists/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	want := domain.DefaultDirectoryFilter()
	if stub.lastFilter != want {
		t.Errorf("expected default filter %+v, got %+v", want, stub.lastFilter)
	}
}

func TestGetDermatologists_RejectsUnknownAvailability(t *testing.T) {
	stub := &stubDermatologistService{}
	router := newDirectoryTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dermatologists/?availability=weekends", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
