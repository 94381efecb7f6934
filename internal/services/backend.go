package services

import (
	"context"

	"oficina-tg-client/internal/models"
)

// BookingAPI is the scheduling part of the platform backend
type BookingAPI interface {
	GetAvailabilityForMonth(ctx context.Context, month, year int, shopID int64) (models.Availability, error)
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	ListBookingsForUser(ctx context.Context, userID int64) ([]models.Booking, error)
}

// ShopAPI is the workshop proximity search
type ShopAPI interface {
	SearchNearbyShops(ctx context.Context, address string, radiusKm int) ([]models.Shop, error)
}

// CatalogAPI is the service catalog and the quote cart
type CatalogAPI interface {
	SearchServices(ctx context.Context, term string) ([]models.Service, error)
	ListFeaturedServices(ctx context.Context) ([]models.Service, error)
	AddQuoteItem(ctx context.Context, clientID, shopID int64, serviceName string, price float64) (*models.Quote, error)
}

// QuoteAPI is the quote backend
type QuoteAPI interface {
	GetQuoteHistory(ctx context.Context, clientID int64) ([]models.Quote, error)
	AcceptQuote(ctx context.Context, quoteID int64) (*models.Quote, error)
	FinalizeQuote(ctx context.Context, quoteID int64) (*models.Quote, error)
}

// DiagnosticAPI is the image diagnostic analysis
type DiagnosticAPI interface {
	AnalyzeDiagnostic(ctx context.Context, req models.DiagnosticRequest) (*models.Diagnosis, error)
}
