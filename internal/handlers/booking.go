package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/commands"
	"oficina-tg-client/internal/constants"
	"oficina-tg-client/internal/helpers"
	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/services"
	"oficina-tg-client/internal/validation"
)

// handleSchedule shows the month calendar of the selected shop
func (h *ClientHandler) handleSchedule(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	profile := h.profile(userID)
	now := h.now()

	availability := h.booking.Availability(ctx, now.Year(), now.Month(), profile.ShopID)

	shop := profile.ShopName
	if shop == "" {
		shop = fmt.Sprintf("Oficina #%d", profile.ShopID)
	}

	text := fmt.Sprintf("<b>Agendar em %s</b>\n\n%s\n\nDigite o dia desejado (%d a %d).",
		escape(shop), helpers.FormatCalendar(now.Year(), now.Month(), availability),
		now.Day(), helpers.DaysIn(now.Year(), now.Month()))

	if err := h.stateService.WithConversationState(userID, models.AwaitingBookingDay); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}

	return h.sendTextMessage(c, text, h.createReturnKeyboard())
}

// handleBookingDayInput validates the picked day
func (h *ClientHandler) handleBookingDayInput(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	now := h.now()
	days := helpers.DaysIn(now.Year(), now.Month())

	day, err := validation.ValidateDay(c.Text(), days)
	if err != nil {
		return h.sendTextMessage(c, fmt.Sprintf("Dia inválido. Digite um número de %d a %d.", now.Day(), days), h.createReturnKeyboard())
	}
	if day < now.Day() {
		return h.sendTextMessage(c, "Selecione uma data a partir de hoje.", h.createReturnKeyboard())
	}

	profile := h.profile(userID)
	availability := h.booking.Availability(ctx, now.Year(), now.Month(), profile.ShopID)
	if availability.Status(day) == models.DayUnavailable {
		return h.sendTextMessage(c, "Este dia já está lotado.", h.createReturnKeyboard())
	}

	if err := h.stateService.WithDay(userID, day); err != nil {
		h.logger.Errorf("Failed to store booking day: %v", err)
		return err
	}
	if err := h.stateService.WithConversationState(userID, models.AwaitingBookingConfirm); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}

	date := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
	return h.sendTextMessage(c,
		fmt.Sprintf("Confirmar agendamento para <b>%s</b>?", date.Format(constants.DisplayDateFormat)),
		h.createConfirmKeyboard())
}

// handleBookingConfirm creates the booking after confirmation
func (h *ClientHandler) handleBookingConfirm(ctx context.Context, c telebot.Context, state *models.UserState) error {
	switch getButtonCommand(c.Text()) {
	case commands.Confirm:
	case commands.Cancel:
		return h.goHome(c, "Agendamento cancelado.")
	default:
		return h.sendTextMessage(c, "Use os botões para confirmar ou cancelar.", h.createConfirmKeyboard())
	}

	if state.Day == nil {
		return h.handleSchedule(ctx, c)
	}

	userID := c.Sender().ID
	profile := h.profile(userID)
	now := h.now()
	date := time.Date(now.Year(), now.Month(), *state.Day, 0, 0, 0, 0, now.Location())
	status := h.booking.Availability(ctx, now.Year(), now.Month(), profile.ShopID).Status(*state.Day)

	booking, err := h.booking.Confirm(ctx, profile.ClientID, profile.ShopID, date, status)
	if errors.Is(err, services.ErrDayUnavailable) {
		return h.goHome(c, "Este dia já está lotado.")
	}
	if err != nil {
		h.logger.Errorf("Failed to create booking for user %d: %v", userID, err)
		return h.goHome(c, "Falha ao agendar.")
	}

	if png, err := h.qrService.GenerateBookingQR(*booking); err == nil {
		caption := fmt.Sprintf("Agendamento %s", helpers.FormatBookingDate(booking.Date))
		if err := h.sendQRCode(c, png, caption); err != nil {
			h.logger.Warnf("Failed to send booking QR: %v", err)
		}
	}

	return h.goHome(c, "Agendamento confirmado!")
}

// handleMyBookings lists the user's appointments
func (h *ClientHandler) handleMyBookings(ctx context.Context, c telebot.Context) error {
	profile := h.profile(c.Sender().ID)

	bookings, err := h.booking.ListForUser(ctx, profile.ClientID)
	if err != nil {
		h.logger.Errorf("Failed to list bookings: %v", err)
		return h.sendTextMessage(c, "Não foi possível carregar seus agendamentos.", h.createMainKeyboard())
	}

	return h.sendTextMessage(c, helpers.FormatBookings(bookings), h.createMainKeyboard())
}
