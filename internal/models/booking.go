package models

import (
	"time"

	"oficina-tg-client/internal/constants"
)

// DayStatus is the availability of a workshop on one calendar day
type DayStatus string

const (
	// DayAvailable means the day still has free slots
	DayAvailable DayStatus = "DISPONIVEL"
	// DayInProgress means the day is partially booked
	DayInProgress DayStatus = "EM_PROCESSO"
	// DayUnavailable means the day is full
	DayUnavailable DayStatus = "INDISPONIVEL"
)

// Availability maps day of month to its status
type Availability map[int]DayStatus

// Status returns the status of a day. Days the backend did not report are available.
func (a Availability) Status(day int) DayStatus {
	if status, ok := a[day]; ok && status != "" {
		return status
	}
	return DayAvailable
}

// BookingStatus is the lifecycle status of a booking
type BookingStatus string

const (
	BookingScheduled  BookingStatus = "AGENDADO"
	BookingInProgress BookingStatus = "EM_PROCESSO"
	BookingDone       BookingStatus = "CONCLUIDO"
	BookingCancelled  BookingStatus = "CANCELADO"
)

// Booking represents a workshop appointment
type Booking struct {
	ID     int64         `json:"id,omitempty"`
	Date   string        `json:"dataAgendamento" validate:"required,datetime=2006-01-02"`
	UserID int64         `json:"usuarioId" validate:"gt=0"`
	ShopID int64         `json:"oficinaId" validate:"gt=0"`
	Status BookingStatus `json:"status" validate:"required"`
}

// Day parses the booking date
func (b *Booking) Day() (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, b.Date, time.Local)
}
