package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/helpers"
	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/services"
	"oficina-tg-client/internal/validation"
)

// handleServices lists the featured services
func (h *ClientHandler) handleServices(ctx context.Context, c telebot.Context) error {
	list, err := h.catalog.Featured(ctx)
	if err != nil {
		h.logger.Errorf("Failed to list featured services: %v", err)
	}

	return h.showServices(c, "<b>Serviços em destaque</b>", list)
}

// handleServiceInput adds a listed service to the quote or runs a new search
func (h *ClientHandler) handleServiceInput(ctx context.Context, c telebot.Context, state *models.UserState) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	var list []models.Service
	if state.State == models.AwaitingServicePick {
		if err := decodePayload(state.Payload, &list); err != nil {
			h.logger.Warnf("Failed to read service list of user %d: %v", userID, err)
		}
	}

	if _, numErr := strconv.Atoi(text); numErr == nil && len(list) > 0 {
		n, err := validation.ValidateChoice(text, len(list))
		if err != nil {
			return h.sendTextMessage(c, fmt.Sprintf("Escolha um serviço de 1 a %d.", len(list)), h.createReturnKeyboard())
		}
		return h.addServiceToQuote(ctx, c, list[n-1])
	}

	found, err := h.catalog.Search(ctx, text)
	if err != nil {
		h.logger.Errorf("Failed to search services for %q: %v", text, err)
		return h.sendTextMessage(c, "Não foi possível buscar serviços agora.", h.createReturnKeyboard())
	}

	return h.showServices(c, fmt.Sprintf("<b>Resultados para \"%s\"</b>", escape(text)), found)
}

// showServices sends a numbered service list and keeps it for the next pick
func (h *ClientHandler) showServices(c telebot.Context, title string, list []models.Service) error {
	userID := c.Sender().ID

	if len(list) == 0 {
		if err := h.stateService.WithConversationState(userID, models.AwaitingServiceTerm); err != nil {
			h.logger.Errorf("Failed to set user state: %v", err)
			return err
		}
		return h.sendTextMessage(c, "Nenhum serviço encontrado. Digite um termo para buscar:", h.createReturnKeyboard())
	}

	payload, err := encodePayload(list)
	if err != nil {
		h.logger.Errorf("Failed to encode services: %v", err)
		return err
	}
	if err := h.stateService.WithPayload(userID, payload); err != nil {
		h.logger.Errorf("Failed to store services: %v", err)
		return err
	}
	if err := h.stateService.WithConversationState(userID, models.AwaitingServicePick); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}

	text := title + "\n\n" + helpers.FormatServices(list) +
		"\nDigite o número para adicionar ao orçamento ou um termo para buscar."
	return h.sendTextMessage(c, text, h.createReturnKeyboard())
}

// addServiceToQuote adds the service to the quote at the user's shop
func (h *ClientHandler) addServiceToQuote(ctx context.Context, c telebot.Context, service models.Service) error {
	profile := h.profile(c.Sender().ID)

	quote, err := h.catalog.AddToQuote(ctx, profile.ClientID, profile.ShopID, service)
	if errors.Is(err, services.ErrPriceUnknown) {
		return h.sendTextMessage(c, "Este serviço não tem preço definido. Consulte a oficina.", h.createReturnKeyboard())
	}
	if err != nil {
		h.logger.Errorf("Failed to add service to quote: %v", err)
		return h.sendTextMessage(c, "Não foi possível adicionar o serviço ao orçamento.", h.createReturnKeyboard())
	}

	return h.goHome(c, fmt.Sprintf("<b>%s</b> adicionado ao orçamento.\n\n%s", escape(service.Name), helpers.FormatQuote(*quote)))
}
