package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	telebot "gopkg.in/telebot.v3"

	apperrors "oficina-tg-client/internal/errors"
	"oficina-tg-client/internal/models"
)

// handleDiagnostic asks for a description or a photo of the problem
func (h *ClientHandler) handleDiagnostic(_ context.Context, c telebot.Context) error {
	if err := h.stateService.WithConversationState(c.Sender().ID, models.AwaitingDiagnosticInput); err != nil {
		h.logger.Errorf("Failed to set user state: %v", err)
		return err
	}

	return h.sendTextMessage(c,
		"Descreva o problema do veículo ou envie uma foto (a legenda vira a descrição).",
		h.createReturnKeyboard())
}

// handleDiagnosticText analyzes a typed description
func (h *ClientHandler) handleDiagnosticText(ctx context.Context, c telebot.Context) error {
	return h.runDiagnostic(ctx, c, c.Text(), nil)
}

// handleDiagnosticPhoto downloads the photo and analyzes it with its caption
func (h *ClientHandler) handleDiagnosticPhoto(ctx context.Context, c telebot.Context, photo *telebot.Photo) error {
	reader, err := h.fetchFile(c, &photo.File)
	if err != nil {
		h.logger.Errorf("Failed to download photo: %v", err)
		return h.sendTextMessage(c, "Não foi possível baixar a foto. Tente novamente.", h.createReturnKeyboard())
	}
	defer reader.Close()

	image := &models.DiagnosticImage{
		FileName:    fmt.Sprintf("%s.jpg", photo.UniqueID),
		ContentType: "image/jpeg",
		Reader:      reader,
	}

	return h.runDiagnostic(ctx, c, c.Message().Caption, image)
}

// runDiagnostic sends the request and shows the diagnosis
func (h *ClientHandler) runDiagnostic(ctx context.Context, c telebot.Context, description string, image *models.DiagnosticImage) error {
	if err := c.Notify(telebot.Typing); err != nil {
		h.logger.Debugf("Failed to send typing action: %v", err)
	}

	diagnosis, err := h.diagnostic.Analyze(ctx, description, image)
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return h.sendTextMessage(c, "Descrição inválida. Descreva o problema ou envie uma foto.", h.createReturnKeyboard())
	}
	if err != nil {
		h.logger.Errorf("Failed to analyze diagnostic: %v", err)
		return h.sendTextMessage(c, "Não foi possível gerar o diagnóstico agora.", h.createReturnKeyboard())
	}

	return h.goHome(c, "🩺 <b>Diagnóstico:</b>\n\n"+escape(diagnosis))
}

// botFile downloads a Telegram file through the bot API
func botFile(c telebot.Context, file *telebot.File) (io.ReadCloser, error) {
	return c.Bot().File(file)
}
