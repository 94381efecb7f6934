package oficinaclient

import (
	"context"
	"strconv"

	"oficina-tg-client/internal/models"
)

const agendaBasePath = "/api/agenda"

// GetAvailabilityForMonth gets the day statuses of a shop for one month
func (c *Client) GetAvailabilityForMonth(ctx context.Context, month, year int, shopID int64) (models.Availability, error) {
	var raw map[string]models.DayStatus
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"mes":       strconv.Itoa(month),
			"ano":       strconv.Itoa(year),
			"oficinaId": strconv.FormatInt(shopID, 10),
		}).
		Get(agendaBasePath + "/status")

	if err := c.decode("get availability", resp, err, &raw); err != nil {
		return nil, err
	}

	availability := make(models.Availability, len(raw))
	for key, status := range raw {
		day, err := strconv.Atoi(key)
		if err != nil {
			c.logger.Warnf("Ignoring availability entry with non-numeric day %q", key)
			continue
		}
		availability[day] = status
	}

	return availability, nil
}

// CreateBooking schedules an appointment
func (c *Client) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	var created models.Booking
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(booking).
		Post(agendaBasePath)

	if err := c.decode("create booking", resp, err, &created); err != nil {
		return nil, err
	}

	c.logger.Infof("Booking %d created for user %d at shop %d on %s", created.ID, booking.UserID, booking.ShopID, booking.Date)
	return &created, nil
}

// ListBookingsForUser gets the appointments of a user
func (c *Client) ListBookingsForUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("usuarioId", strconv.FormatInt(userID, 10)).
		Get(agendaBasePath + "/usuario/{usuarioId}")

	if err := c.decode("list bookings", resp, err, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}
