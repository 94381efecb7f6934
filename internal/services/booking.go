package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/constants"
	apperrors "oficina-tg-client/internal/errors"
	"oficina-tg-client/internal/models"
)

// ErrDayUnavailable is returned when booking a day that is already full
var ErrDayUnavailable = errors.New("day is unavailable")

// BookingService handles the calendar and appointments
type BookingService struct {
	api      BookingAPI
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(api BookingAPI, logger *logrus.Logger) *BookingService {
	return &BookingService{
		api:      api,
		validate: validator.New(),
		logger:   logger,
	}
}

// Availability returns the day statuses of a month.
// Failures are logged and yield an empty map, so every day shows as available.
func (s *BookingService) Availability(ctx context.Context, year int, month time.Month, shopID int64) models.Availability {
	availability, err := s.api.GetAvailabilityForMonth(ctx, int(month), year, shopID)
	if err != nil {
		s.logger.Errorf("Failed to get availability for shop %d (%d-%02d): %v", shopID, year, month, err)
		return models.Availability{}
	}
	if availability == nil {
		return models.Availability{}
	}
	return availability
}

// Confirm books a day for a user at a shop
func (s *BookingService) Confirm(ctx context.Context, userID, shopID int64, day time.Time, status models.DayStatus) (*models.Booking, error) {
	if status == models.DayUnavailable {
		return nil, ErrDayUnavailable
	}

	booking := models.Booking{
		Date:   day.Format(constants.DateFormat),
		UserID: userID,
		ShopID: shopID,
		Status: models.BookingScheduled,
	}

	if err := s.validate.Struct(booking); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, &apperrors.ValidationError{Field: fieldErrs[0].Field(), Message: fieldErrs[0].Tag()}
		}
		return nil, err
	}

	created, err := s.api.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.Infof("User %d booked shop %d on %s", userID, shopID, booking.Date)
	return created, nil
}

// ListForUser returns the appointments of a user, newest first
func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := s.api.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date > bookings[j].Date
	})
	return bookings, nil
}
