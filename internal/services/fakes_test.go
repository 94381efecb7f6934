package services

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/models"
)

var errBackend = errors.New("backend unavailable")

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeBookingAPI struct {
	availability models.Availability
	availErr     error
	bookings     []models.Booking
	created      []models.Booking
	createErr    error
}

func (f *fakeBookingAPI) GetAvailabilityForMonth(_ context.Context, _, _ int, _ int64) (models.Availability, error) {
	return f.availability, f.availErr
}

func (f *fakeBookingAPI) CreateBooking(_ context.Context, b models.Booking) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return &b, nil
}

func (f *fakeBookingAPI) ListBookingsForUser(_ context.Context, _ int64) ([]models.Booking, error) {
	return f.bookings, nil
}

type fakeCatalogAPI struct {
	featured []models.Service
	found    []models.Service
	terms    []string
	added    []string
}

func (f *fakeCatalogAPI) SearchServices(_ context.Context, term string) ([]models.Service, error) {
	f.terms = append(f.terms, term)
	return f.found, nil
}

func (f *fakeCatalogAPI) ListFeaturedServices(_ context.Context) ([]models.Service, error) {
	return f.featured, nil
}

func (f *fakeCatalogAPI) AddQuoteItem(_ context.Context, _, _ int64, name string, _ float64) (*models.Quote, error) {
	f.added = append(f.added, name)
	return &models.Quote{ID: 1, Status: models.QuotePending}, nil
}

type fakeDiagnosticAPI struct {
	last models.DiagnosticRequest
}

func (f *fakeDiagnosticAPI) AnalyzeDiagnostic(_ context.Context, req models.DiagnosticRequest) (*models.Diagnosis, error) {
	f.last = req
	return &models.Diagnosis{Text: "Pastilhas de freio gastas"}, nil
}

type fakeShopAPI struct {
	shops  []models.Shop
	radius int
}

func (f *fakeShopAPI) SearchNearbyShops(_ context.Context, _ string, radiusKm int) ([]models.Shop, error) {
	f.radius = radiusKm
	return f.shops, nil
}
