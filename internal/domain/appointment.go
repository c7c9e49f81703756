package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	DermatologistID int64             `json:"dermatologist_id"`
	ScanID          *int64            `json:"scan_id"`
	ScheduledAt     time.Time         `json:"scheduled_at"`
	Reason          string            `json:"reason,omitempty"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// CreateAppointmentDTO is the booking draft as submitted by the user.
// Date and time arrive as two separately collected strings; Timezone is an
// optional IANA zone name used to anchor them to an absolute instant.
type CreateAppointmentDTO struct {
	DermatologistID int64  `json:"dermatologist_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
	ScanID          *int64 `json:"scan_id"`
	Timezone        string `json:"timezone"`
}

type UpdateAppointmentDTO struct {
	Status      *AppointmentStatus `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	ScheduledAt *time.Time         `json:"scheduled_at"`
}

type AppointmentFilter struct {
	UserID          *int64             `json:"user_id"`
	DermatologistID *int64             `json:"dermatologist_id"`
	Status          *AppointmentStatus `json:"status"`
	StartDate       *time.Time         `json:"start_date"`
	EndDate         *time.Time         `json:"end_date"`
	Limit           int                `json:"limit"`
	Offset          int                `json:"offset"`
}

// EmailJob carries everything the confirmation composer needs to build and
// send one appointment confirmation. It is constructed after the appointment
// is durably created and consumed exactly once; its failure never affects
// the appointment itself.
type EmailJob struct {
	AppointmentID   int64
	UserID          int64
	DermatologistID int64
	ScheduledAt     time.Time
	Reason          string
}
