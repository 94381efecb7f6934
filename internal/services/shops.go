package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/validation"
)

// MapService searches workshops near an address
type MapService struct {
	api      ShopAPI
	radiusKm int
	limit    int
	logger   *logrus.Logger
}

// NewMapService creates a new map service
func NewMapService(api ShopAPI, radiusKm, limit int, logger *logrus.Logger) *MapService {
	return &MapService{
		api:      api,
		radiusKm: radiusKm,
		limit:    limit,
		logger:   logger,
	}
}

// Nearby returns the shops around an address within the configured radius
func (s *MapService) Nearby(ctx context.Context, address string) ([]models.Shop, error) {
	address, err := validation.ValidateAddress(address)
	if err != nil {
		return nil, err
	}

	shops, err := s.api.SearchNearbyShops(ctx, address, s.radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search shops: %w", err)
	}

	s.logger.Debugf("Found %d shops within %d km of %q", len(shops), s.radiusKm, address)
	if s.limit > 0 && len(shops) > s.limit {
		shops = shops[:s.limit]
	}
	return shops, nil
}
