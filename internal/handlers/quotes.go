package handlers

import (
	"context"
	"fmt"

	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/commands"
	"oficina-tg-client/internal/helpers"
	"oficina-tg-client/internal/models"
)

// quotePayload remembers what the quote screen offered
type quotePayload struct {
	CanAccept   bool   `json:"can_accept"`
	CanFinalize bool   `json:"can_finalize"`
	Action      string `json:"action,omitempty"`
}

// handleQuotes shows the highlighted quote and the history
func (h *ClientHandler) handleQuotes(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	profile := h.profile(userID)

	history, err := h.quotes.History(ctx, profile.ClientID)
	if err != nil {
		h.logger.Errorf("Failed to load quote history: %v", err)
		return h.sendTextMessage(c, "Não foi possível carregar seus orçamentos.", h.createMainKeyboard())
	}

	text := helpers.FormatQuoteHistory(history.Highlight, history.Others)
	if history.Highlight == nil {
		return h.sendTextMessage(c, text, h.createMainKeyboard())
	}

	offer := quotePayload{
		CanAccept:   history.Highlight.Status == models.QuotePending,
		CanFinalize: history.Highlight.Status != models.QuoteDone,
	}
	if err := h.storeQuoteScreen(userID, history.Highlight.ID, offer); err != nil {
		return err
	}

	return h.sendTextMessage(c, text, h.createQuoteKeyboard(offer.CanAccept, offer.CanFinalize))
}

// storeQuoteScreen keeps the highlighted quote and the offered actions
func (h *ClientHandler) storeQuoteScreen(userID, quoteID int64, offer quotePayload) error {
	payload, err := encodePayload(offer)
	if err != nil {
		h.logger.Errorf("Failed to encode quote screen: %v", err)
		return err
	}
	if err := h.stateService.WithQuote(userID, quoteID); err != nil {
		h.logger.Errorf("Failed to store quote: %v", err)
		return err
	}
	if err := h.stateService.WithPayload(userID, payload); err != nil {
		h.logger.Errorf("Failed to store quote screen: %v", err)
		return err
	}
	if err := h.stateService.WithConversationState(userID, models.AwaitingQuoteAction); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}
	return nil
}

// handleQuoteAction asks to confirm the chosen quote action
func (h *ClientHandler) handleQuoteAction(ctx context.Context, c telebot.Context, state *models.UserState) error {
	userID := c.Sender().ID

	var offer quotePayload
	if err := decodePayload(state.Payload, &offer); err != nil || state.QuoteID == nil {
		h.logger.Warnf("Quote screen of user %d is gone: %v", userID, err)
		return h.handleQuotes(ctx, c)
	}

	command := getButtonCommand(c.Text())
	var question string
	switch {
	case command == commands.AcceptQuote && offer.CanAccept:
		question = fmt.Sprintf("Aprovar o orçamento #%d?", *state.QuoteID)
	case command == commands.FinalizeQuote && offer.CanFinalize:
		question = fmt.Sprintf("Marcar o serviço do orçamento #%d como concluído?", *state.QuoteID)
	default:
		return h.sendTextMessage(c, "Use os botões abaixo.", h.createQuoteKeyboard(offer.CanAccept, offer.CanFinalize))
	}

	offer.Action = command
	payload, err := encodePayload(offer)
	if err != nil {
		return err
	}
	if err := h.stateService.WithPayload(userID, payload); err != nil {
		h.logger.Errorf("Failed to store quote action: %v", err)
		return err
	}
	if err := h.stateService.WithConversationState(userID, models.AwaitingQuoteConfirm); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}

	return h.sendTextMessage(c, question, h.createConfirmKeyboard())
}

// handleQuoteConfirm runs the confirmed quote action
func (h *ClientHandler) handleQuoteConfirm(ctx context.Context, c telebot.Context, state *models.UserState) error {
	userID := c.Sender().ID

	var offer quotePayload
	if err := decodePayload(state.Payload, &offer); err != nil || state.QuoteID == nil {
		h.logger.Warnf("Quote action of user %d is gone: %v", userID, err)
		return h.handleQuotes(ctx, c)
	}

	switch getButtonCommand(c.Text()) {
	case commands.Confirm:
	case commands.Cancel:
		offer.Action = ""
		if err := h.storeQuoteScreen(userID, *state.QuoteID, offer); err != nil {
			return err
		}
		return h.sendTextMessage(c, "Ação cancelada.", h.createQuoteKeyboard(offer.CanAccept, offer.CanFinalize))
	default:
		return h.sendTextMessage(c, "Use os botões para confirmar ou cancelar.", h.createConfirmKeyboard())
	}

	switch offer.Action {
	case commands.AcceptQuote:
		if _, err := h.quotes.Accept(ctx, *state.QuoteID); err != nil {
			h.logger.Errorf("Failed to accept quote: %v", err)
			return h.goHome(c, "Não foi possível aprovar o orçamento.")
		}
		return h.goHome(c, "Orçamento aprovado! A oficina será notificada.")
	case commands.FinalizeQuote:
		if _, err := h.quotes.Finalize(ctx, *state.QuoteID); err != nil {
			h.logger.Errorf("Failed to finalize quote: %v", err)
			return h.goHome(c, "Não foi possível finalizar o serviço.")
		}
		return h.goHome(c, "Serviço marcado como concluído.")
	default:
		return h.handleQuotes(ctx, c)
	}
}
