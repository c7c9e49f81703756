package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"acnescan/internal/domain"
)

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user domain.CreateUserDTO) (int64, error) {
	id := int64(len(f.users) + 100)
	f.users[id] = &domain.User{
		ID:           id,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.Password,
		Role:         user.Role,
		IsActive:     true,
	}
	return id, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error {
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return nil, nil
}

type fakeDermRepo struct {
	dermatologists map[int64]*domain.Dermatologist
}

func (f *fakeDermRepo) Create(ctx context.Context, d domain.Dermatologist) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeDermRepo) GetByID(ctx context.Context, id int64) (*domain.Dermatologist, error) {
	d, ok := f.dermatologists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (f *fakeDermRepo) List(ctx context.Context) ([]domain.Dermatologist, error) {
	out := make([]domain.Dermatologist, 0, len(f.dermatologists))
	for _, d := range f.dermatologists {
		out = append(out, *d)
	}
	return out, nil
}

type fakeScanRepo struct {
	scans map[int64]*domain.Scan
}

func (f *fakeScanRepo) Create(ctx context.Context, userID int64, scan domain.CreateScanDTO) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeScanRepo) GetByID(ctx context.Context, id int64) (*domain.Scan, error) {
	scan, ok := f.scans[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return scan, nil
}

func (f *fakeScanRepo) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Scan, error) {
	ids := make([]int64, 0, len(f.scans))
	for id, scan := range f.scans {
		if scan.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Scan, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.scans[id])
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	nextID       int64
	appointments map[int64]*domain.Appointment
	createErr    error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment)}
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, userID, dermatologistID int64, scanID *int64, scheduledAt time.Time, reason string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return 0, f.createErr
	}

	f.nextID++
	f.appointments[f.nextID] = &domain.Appointment{
		ID:              f.nextID,
		UserID:          userID,
		DermatologistID: dermatologistID,
		ScanID:          scanID,
		ScheduledAt:     scheduledAt,
		Reason:          reason,
		Status:          domain.AppointmentStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	return f.nextID, nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dto.Status != nil {
		appointment.Status = *dto.Status
	}
	if dto.ScheduledAt != nil {
		appointment.ScheduledAt = *dto.ScheduledAt
	}
	return nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Appointment, 0, len(f.appointments))
	for _, appointment := range f.appointments {
		out = append(out, *appointment)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments), nil
}

func (f *fakeAppointmentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

type fakeNotification struct {
	mu   sync.Mutex
	jobs []domain.EmailJob
	err  error
}

func (f *fakeNotification) SendAppointmentConfirmation(ctx context.Context, job domain.EmailJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, job)
	return f.err
}

func (f *fakeNotification) sent() []domain.EmailJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.EmailJob, len(f.jobs))
	copy(out, f.jobs)
	return out
}

func newTestAppointmentService(notification *fakeNotification) (*AppointmentServiceImpl, *fakeAppointmentRepo) {
	repo := newFakeAppointmentRepo()
	userRepo := &fakeUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, Name: "Jane Doe", Email: "jane@example.com"},
	}}
	dermRepo := &fakeDermRepo{dermatologists: map[int64]*domain.Dermatologist{
		3: {ID: 3, Name: "Dr. Sarah Johnson", Location: "Boston, MA"},
	}}
	scanRepo := &fakeScanRepo{scans: map[int64]*domain.Scan{
		11: {ID: 11, UserID: 7, AcneType: "Blackheads_Moderate"},
		12: {ID: 12, UserID: 99, AcneType: "Cystic_Severe"},
	}}

	svc := NewAppointmentService(repo, dermRepo, userRepo, scanRepo, notification, time.Second, zap.NewNop())
	return svc, repo
}

func futureBookingDTO() domain.CreateAppointmentDTO {
	date := time.Now().AddDate(0, 0, 7)
	return domain.CreateAppointmentDTO{
		DermatologistID: 3,
		Date:            date.Format("2006-01-02"),
		Time:            "14:30",
		Reason:          "Follow-up on recent scan",
	}
}

func waitForEmail(t *testing.T, svc *AppointmentServiceImpl) {
	t.Helper()
	select {
	case <-svc.emailDone:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for confirmation dispatch")
	}
}

func TestAppointmentCreate_PersistsPendingAndSendsConfirmation(t *testing.T) {
	notification := &fakeNotification{}
	svc, repo := newTestAppointmentService(notification)

	dto := futureBookingDTO()
	appointment, err := svc.Create(context.Background(), 7, dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.count() != 1 {
		t.Fatalf("expected exactly one appointment, got %d", repo.count())
	}
	if appointment.Status != domain.AppointmentStatusPending {
		t.Errorf("expected pending status, got %q", appointment.Status)
	}

	wantTime, err := CombineDateTime(dto.Date, dto.Time, "")
	if err != nil {
		t.Fatalf("CombineDateTime: %v", err)
	}
	if !appointment.ScheduledAt.Equal(wantTime) {
		t.Errorf("scheduled at %v, want %v", appointment.ScheduledAt, wantTime)
	}

	waitForEmail(t, svc)
	jobs := notification.sent()
	if len(jobs) != 1 {
		t.Fatalf("expected one confirmation job, got %d", len(jobs))
	}
	if jobs[0].AppointmentID != appointment.ID || jobs[0].UserID != 7 || jobs[0].DermatologistID != 3 {
		t.Errorf("unexpected job: %+v", jobs[0])
	}
}

func TestAppointmentCreate_EmailFailureDoesNotFailBooking(t *testing.T) {
	notification := &fakeNotification{err: errors.New("smtp down")}
	svc, repo := newTestAppointmentService(notification)

	appointment, err := svc.Create(context.Background(), 7, futureBookingDTO())
	if err != nil {
		t.Fatalf("booking should succeed despite email failure, got: %v", err)
	}
	if appointment == nil || appointment.ID == 0 {
		t.Fatal("expected a created appointment")
	}
	if repo.count() != 1 {
		t.Fatalf("expected exactly one appointment, got %d", repo.count())
	}

	waitForEmail(t, svc)
	if len(notification.sent()) != 1 {
		t.Errorf("expected one attempted send, got %d", len(notification.sent()))
	}
}

func TestAppointmentCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateAppointmentDTO)
	}{
		{"no dermatologist selected", func(d *domain.CreateAppointmentDTO) { d.DermatologistID = 0 }},
		{"blank reason", func(d *domain.CreateAppointmentDTO) { d.Reason = "   " }},
		{"malformed date", func(d *domain.CreateAppointmentDTO) { d.Date = "next tuesday" }},
		{"malformed time", func(d *domain.CreateAppointmentDTO) { d.Time = "2pm" }},
		{"past date", func(d *domain.CreateAppointmentDTO) { d.Date = "2020-01-15" }},
		{"unknown timezone", func(d *domain.CreateAppointmentDTO) { d.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notification := &fakeNotification{}
			svc, repo := newTestAppointmentService(notification)

			dto := futureBookingDTO()
			tt.mutate(&dto)

			_, err := svc.Create(context.Background(), 7, dto)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected invalid input error, got: %v", err)
			}
			if repo.count() != 0 {
				t.Errorf("no appointment should be persisted, got %d", repo.count())
			}
			if len(notification.sent()) != 0 {
				t.Errorf("no confirmation should be sent, got %d", len(notification.sent()))
			}
		})
	}
}

func TestAppointmentCreate_UnknownDermatologist(t *testing.T) {
	notification := &fakeNotification{}
	svc, repo := newTestAppointmentService(notification)

	dto := futureBookingDTO()
	dto.DermatologistID = 42

	_, err := svc.Create(context.Background(), 7, dto)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found error, got: %v", err)
	}
	if repo.count() != 0 {
		t.Errorf("no appointment should be persisted, got %d", repo.count())
	}
}

func TestAppointmentCreate_OwnScanReferenceIsKept(t *testing.T) {
	notification := &fakeNotification{}
	svc, _ := newTestAppointmentService(notification)

	dto := futureBookingDTO()
	scanID := int64(11)
	dto.ScanID = &scanID

	appointment, err := svc.Create(context.Background(), 7, dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appointment.ScanID == nil || *appointment.ScanID != 11 {
		t.Errorf("expected scan reference 11 to be kept, got %v", appointment.ScanID)
	}
	waitForEmail(t, svc)
}

func TestAppointmentCreate_ForeignScanReferenceIsDropped(t *testing.T) {
	notification := &fakeNotification{}
	svc, _ := newTestAppointmentService(notification)

	dto := futureBookingDTO()
	scanID := int64(12) // owned by another user
	dto.ScanID = &scanID

	appointment, err := svc.Create(context.Background(), 7, dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appointment.ScanID != nil {
		t.Errorf("foreign scan reference should be dropped, got %v", *appointment.ScanID)
	}
	waitForEmail(t, svc)
}

func TestAppointmentCancel(t *testing.T) {
	notification := &fakeNotification{}
	svc, repo := newTestAppointmentService(notification)

	appointment, err := svc.Create(context.Background(), 7, futureBookingDTO())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitForEmail(t, svc)

	if err := svc.Cancel(context.Background(), appointment.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	got, err := repo.GetByID(context.Background(), appointment.ID)
	if err != nil {
		t.Fatalf("appointment disappeared: %v", err)
	}
	if got.Status != domain.AppointmentStatusCancelled {
		t.Errorf("expected cancelled status, got %q", got.Status)
	}
}

func TestAppointmentCancel_NotFound(t *testing.T) {
	notification := &fakeNotification{}
	svc, _ := newTestAppointmentService(notification)

	err := svc.Cancel(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found error, got: %v", err)
	}
}

func TestCombineDateTime(t *testing.T) {
	tests := []struct {
		date     string
		time     string
		timezone string
		want     string
		wantErr  bool
	}{
		{"2026-09-15", "14:30", "", "2026-09-15T14:30:00Z", false},
		{"2026-09-15", "09:00", "America/New_York", "2026-09-15T13:00:00Z", false},
		{"2026-01-15", "09:00", "America/New_York", "2026-01-15T14:00:00Z", false},
		{"2026-09-15", "14:30", "Mars/Olympus", "", true},
		{"15-09-2026", "14:30", "", "", true},
		{"2026-09-15", "25:00", "", "", true},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s %s %s", tt.date, tt.time, tt.timezone)
		t.Run(name, func(t *testing.T) {
			got, err := CombineDateTime(tt.date, tt.time, tt.timezone)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("expected invalid input error, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want, parseErr := time.Parse(time.RFC3339, tt.want)
			if parseErr != nil {
				t.Fatalf("bad want value: %v", parseErr)
			}
			if !got.Equal(want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}
