package oficinaclient

import (
	"context"
	"strconv"
	"strings"

	"oficina-tg-client/internal/models"
)

// SearchNearbyShops finds workshops around an address
func (c *Client) SearchNearbyShops(ctx context.Context, address string, radiusKm int) ([]models.Shop, error) {
	var shops []models.Shop
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"endereco": address,
			"raio":     strconv.Itoa(radiusKm),
		}).
		Get("/api/mapa/proximas")

	if err := c.decode("search shops", resp, err, &shops); err != nil {
		return nil, err
	}

	return shops, nil
}

// SearchServices finds catalog entries by name. An empty term lists the featured ones.
func (c *Client) SearchServices(ctx context.Context, term string) ([]models.Service, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return c.ListFeaturedServices(ctx)
	}

	var services []models.Service
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("termo", term).
		Get("/api/servicos/buscar")

	if err := c.decode("search services", resp, err, &services); err != nil {
		return nil, err
	}

	return services, nil
}

// ListFeaturedServices gets the promoted catalog entries
func (c *Client) ListFeaturedServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get("/api/servicos/destaques")

	if err := c.decode("list featured services", resp, err, &services); err != nil {
		return nil, err
	}

	return services, nil
}
