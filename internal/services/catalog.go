package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/validation"
)

// ErrPriceUnknown is returned when adding a service without a price to a quote
var ErrPriceUnknown = errors.New("service has no price")

// CatalogService lists services and adds them to the client's quote
type CatalogService struct {
	api    CatalogAPI
	limit  int
	logger *logrus.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(api CatalogAPI, limit int, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		api:    api,
		limit:  limit,
		logger: logger,
	}
}

// Featured returns the promoted services
func (s *CatalogService) Featured(ctx context.Context) ([]models.Service, error) {
	services, err := s.api.ListFeaturedServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured services: %w", err)
	}
	return s.truncate(services), nil
}

// Search finds services by name. An empty term returns the featured ones.
func (s *CatalogService) Search(ctx context.Context, term string) ([]models.Service, error) {
	term, err := validation.ValidateSearchTerm(term)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return s.Featured(ctx)
	}

	services, err := s.api.SearchServices(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}
	return s.truncate(services), nil
}

// AddToQuote adds a service to the client's quote at a shop
func (s *CatalogService) AddToQuote(ctx context.Context, clientID, shopID int64, service models.Service) (*models.Quote, error) {
	if service.Price == nil {
		return nil, ErrPriceUnknown
	}

	quote, err := s.api.AddQuoteItem(ctx, clientID, shopID, service.Name, *service.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to add %q to quote: %w", service.Name, err)
	}

	s.logger.Infof("Client %d added %q to quote %d at shop %d", clientID, service.Name, quote.ID, shopID)
	return quote, nil
}

func (s *CatalogService) truncate(services []models.Service) []models.Service {
	if s.limit > 0 && len(services) > s.limit {
		return services[:s.limit]
	}
	return services
}
