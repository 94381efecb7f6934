package oficinaclient

import (
	"context"
	"strconv"

	"oficina-tg-client/internal/models"
)

const chatBasePath = "/api/chat/suporte"

// StartOrResumeChatSession opens a support chat for the client or returns the open one
func (c *Client) StartOrResumeChatSession(ctx context.Context, clientID int64) (*models.ChatSession, error) {
	var session models.ChatSession
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("clienteId", strconv.FormatInt(clientID, 10)).
		Get(chatBasePath + "/iniciar/{clienteId}")

	if err := c.decode("start chat", resp, err, &session); err != nil {
		return nil, err
	}

	c.logger.Infof("Support chat %d ready for client %d (status %s)", session.ID, clientID, session.Status)
	return &session, nil
}

// ListMessages gets the stored messages of a chat session
func (c *Client) ListMessages(ctx context.Context, sessionID int64) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("chatId", strconv.FormatInt(sessionID, 10)).
		Get(chatBasePath + "/mensagens/{chatId}")

	if err := c.decode("list messages", resp, err, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// PostMessage stores a client message in a chat session
func (c *Client) PostMessage(ctx context.Context, sessionID int64, text string) (*models.ChatMessage, error) {
	var message models.ChatMessage
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("chatId", strconv.FormatInt(sessionID, 10)).
		SetQueryParam("conteudo", text).
		Post(chatBasePath + "/enviar/{chatId}")

	if err := c.decode("post message", resp, err, &message); err != nil {
		return nil, err
	}

	return &message, nil
}

// FinalizeSession closes a chat session
func (c *Client) FinalizeSession(ctx context.Context, sessionID int64) (*models.ChatSession, error) {
	var session models.ChatSession
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("chatId", strconv.FormatInt(sessionID, 10)).
		Put(chatBasePath + "/finalizar/{chatId}")

	if err := c.decode("finalize chat", resp, err, &session); err != nil {
		return nil, err
	}

	c.logger.Infof("Support chat %d finalized", sessionID)
	return &session, nil
}
