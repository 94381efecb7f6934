package handlers

import (
	"context"
	"errors"
	"strings"

	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/commands"
	"oficina-tg-client/internal/constants"
	"oficina-tg-client/internal/helpers"
	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/supportchat"
	"oficina-tg-client/internal/supportflow"
)

const busyMessage = "Aguarde, ainda estou processando sua mensagem."

// handleSupport opens the support chat and shows the recent transcript
func (h *ClientHandler) handleSupport(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	profile := h.profile(userID)

	session, outcome, err := h.support.Open(ctx, userID, profile.ClientID)
	if err != nil {
		h.logger.Errorf("Failed to open support chat for user %d: %v", userID, err)
		return h.goHome(c, "Não foi possível abrir o suporte agora.")
	}

	if err := h.stateService.WithConversationState(userID, models.InSupportChat); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}

	return h.renderTranscript(c, session, outcome.Notices)
}

// handleSupportInput forwards the text to the support flow
func (h *ClientHandler) handleSupportInput(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	session, ok := h.support.Get(userID)
	if !ok {
		h.logger.Debugf("Support session of user %d expired, reopening", userID)
		return h.handleSupport(ctx, c)
	}

	switch getButtonCommand(c.Text()) {
	case commands.FinalizeChat:
		if err := h.stateService.WithConversationState(userID, models.AwaitingSupportFinalize); err != nil {
			h.logger.Errorf("Failed to set user state: %v", err)
			return err
		}
		return h.sendTextMessage(c, "Deseja realmente finalizar o chat?", h.createConfirmKeyboard())
	case commands.NewChat:
		outcome, err := session.Reset(ctx, h.profile(userID).ClientID)
		if errors.Is(err, supportchat.ErrBusy) {
			return h.sendTextMessage(c, busyMessage, h.createSupportKeyboard())
		}
		if err != nil {
			return h.handleSupport(ctx, c)
		}
		return h.renderTranscript(c, session, outcome.Notices)
	}

	outcome, err := session.Submit(ctx, c.Text())
	switch {
	case errors.Is(err, supportchat.ErrBusy):
		return h.sendTextMessage(c, busyMessage, h.createSupportKeyboard())
	case errors.Is(err, supportchat.ErrClosed):
		return h.handleSupport(ctx, c)
	case err != nil:
		h.logger.Errorf("Failed to process support input: %v", err)
		return h.sendTextMessage(c, supportflow.InternalErrorMessage, h.createSupportKeyboard())
	}

	return h.renderOutcome(c, outcome)
}

// handleSupportFinalizeConfirm finalizes the chat after confirmation
func (h *ClientHandler) handleSupportFinalizeConfirm(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	session, ok := h.support.Get(userID)
	if !ok {
		return h.goHome(c, "O chat já foi encerrado.")
	}

	if getButtonCommand(c.Text()) != commands.Confirm {
		if err := h.stateService.WithConversationState(userID, models.InSupportChat); err != nil {
			h.logger.Errorf("Failed to set user state: %v", err)
			return err
		}
		return h.sendTextMessage(c, "Ok, vamos continuar.", h.createSupportKeyboard())
	}

	outcome, err := session.Finalize(ctx)
	if errors.Is(err, supportchat.ErrBusy) {
		return h.sendTextMessage(c, busyMessage, h.createConfirmKeyboard())
	}
	if err != nil {
		h.logger.Warnf("Support chat of user %d was not finalized: %v", userID, err)
		if stateErr := h.stateService.WithConversationState(userID, models.InSupportChat); stateErr != nil {
			h.logger.Errorf("Failed to set user state: %v", stateErr)
		}
		return h.sendTextMessage(c, formatNotices(outcome.Notices), h.createSupportKeyboard())
	}

	h.support.End(userID)
	return h.goHome(c, "Chat finalizado. Obrigado pelo contato!")
}

// renderTranscript sends the newest messages of the session with its notices
func (h *ClientHandler) renderTranscript(c telebot.Context, session *supportchat.Session, notices []supportflow.Notice) error {
	parts := []string{escape(helpers.FormatTranscript(session.Tail(constants.TranscriptTail)))}
	if text := formatNotices(notices); text != "" {
		parts = append(parts, text)
	}

	return h.sendTextMessage(c, strings.Join(parts, "\n\n"), h.createSupportKeyboard())
}

// renderOutcome sends the replies of one transition
func (h *ClientHandler) renderOutcome(c telebot.Context, outcome supportchat.Outcome) error {
	parts := make([]string, 0, len(outcome.Replies)+1)
	for _, reply := range outcome.Replies {
		parts = append(parts, escape(reply))
	}
	if text := formatNotices(outcome.Notices); text != "" {
		parts = append(parts, text)
	}

	if outcome.NavigateHome {
		h.support.End(c.Sender().ID)
		return h.goHome(c, strings.Join(parts, "\n\n"))
	}

	if len(parts) == 0 {
		return nil
	}
	return h.sendTextMessage(c, strings.Join(parts, "\n\n"), h.createSupportKeyboard())
}

// formatNotices renders notices outside of the transcript
func formatNotices(notices []supportflow.Notice) string {
	lines := make([]string, 0, len(notices))
	for _, n := range notices {
		icon := "ℹ️"
		if n.Blocking {
			icon = "⚠️"
		}
		lines = append(lines, icon+" "+escape(n.Text))
	}
	return strings.Join(lines, "\n")
}
