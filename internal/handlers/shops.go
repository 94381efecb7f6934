package handlers

import (
	"context"
	"fmt"

	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/helpers"
	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/validation"
)

// handleNearbyShops asks for the address used in the shop search
func (h *ClientHandler) handleNearbyShops(_ context.Context, c telebot.Context) error {
	if err := h.stateService.WithConversationState(c.Sender().ID, models.AwaitingAddress); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}

	return h.sendTextMessage(c, "Digite seu endereço ou CEP para buscar oficinas próximas:", h.createReturnKeyboard())
}

// handleAddressInput searches shops near the typed address
func (h *ClientHandler) handleAddressInput(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	address, err := validation.ValidateAddress(c.Text())
	if err != nil {
		return h.sendTextMessage(c, "Endereço inválido. Tente novamente.", h.createReturnKeyboard())
	}

	shops, err := h.maps.Nearby(ctx, address)
	if err != nil {
		h.logger.Errorf("Failed to search shops near %q: %v", address, err)
		return h.sendTextMessage(c, "Não foi possível buscar oficinas agora. Tente novamente.", h.createReturnKeyboard())
	}

	if len(shops) == 0 {
		return h.sendTextMessage(c, "Nenhuma oficina encontrada perto deste endereço. Tente outro endereço.", h.createReturnKeyboard())
	}

	payload, err := encodePayload(shops)
	if err != nil {
		h.logger.Errorf("Failed to encode shops: %v", err)
		return err
	}
	if err := h.stateService.WithPayload(userID, payload); err != nil {
		h.logger.Errorf("Failed to store shops: %v", err)
		return err
	}
	if err := h.stateService.WithConversationState(userID, models.AwaitingShopPick); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}

	text := helpers.FormatShops(shops) + "\nDigite o número da oficina para selecioná-la."
	return h.sendTextMessage(c, text, h.createReturnKeyboard())
}

// handleShopPick stores the picked shop and shows it on the map
func (h *ClientHandler) handleShopPick(_ context.Context, c telebot.Context, state *models.UserState) error {
	userID := c.Sender().ID

	var shops []models.Shop
	if err := decodePayload(state.Payload, &shops); err != nil || len(shops) == 0 {
		h.logger.Warnf("No shop list stored for user %d: %v", userID, err)
		return h.goHome(c, "A busca expirou. Escolha uma opção:")
	}

	n, err := validation.ValidateChoice(c.Text(), len(shops))
	if err != nil {
		return h.sendTextMessage(c, fmt.Sprintf("Escolha uma oficina de 1 a %d.", len(shops)), h.createReturnKeyboard())
	}
	shop := shops[n-1]

	if err := h.profiles.SelectShop(userID, shop); err != nil {
		h.logger.Errorf("Failed to save selected shop: %v", err)
		return h.sendTextMessage(c, "Não foi possível salvar a oficina escolhida.", h.createReturnKeyboard())
	}

	if shop.HasCoordinates() {
		location := &telebot.Location{Lat: float32(shop.Latitude), Lng: float32(shop.Longitude)}
		if err := c.Send(location); err != nil {
			h.logger.Warnf("Failed to send shop location: %v", err)
		}
	}

	return h.goHome(c, fmt.Sprintf("Oficina <b>%s</b> selecionada para seus agendamentos.", escape(shop.Name)))
}
