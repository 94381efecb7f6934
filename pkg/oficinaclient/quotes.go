package oficinaclient

import (
	"context"
	"strconv"

	"oficina-tg-client/internal/models"
)

const quotesBasePath = "/api/orcamentos"

// GetQuoteHistory gets the quotes of a client
func (c *Client) GetQuoteHistory(ctx context.Context, clientID int64) ([]models.Quote, error) {
	var quotes []models.Quote
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("clienteId", strconv.FormatInt(clientID, 10)).
		Get(quotesBasePath + "/historico/{clienteId}")

	if err := c.decode("get quote history", resp, err, &quotes); err != nil {
		return nil, err
	}

	return quotes, nil
}

// AcceptQuote approves a quote
func (c *Client) AcceptQuote(ctx context.Context, quoteID int64) (*models.Quote, error) {
	return c.updateQuote(ctx, "accept quote", "/aceitar/{id}", quoteID)
}

// FinalizeQuote marks a quote as done
func (c *Client) FinalizeQuote(ctx context.Context, quoteID int64) (*models.Quote, error) {
	return c.updateQuote(ctx, "finalize quote", "/finalizar/{id}", quoteID)
}

func (c *Client) updateQuote(ctx context.Context, operation, path string, quoteID int64) (*models.Quote, error) {
	var quote models.Quote
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(quoteID, 10)).
		Put(quotesBasePath + path)

	if err := c.decode(operation, resp, err, &quote); err != nil {
		return nil, err
	}

	c.logger.Infof("Quote %d updated (%s), status %s", quoteID, operation, quote.Status)
	return &quote, nil
}

// AddQuoteItem adds a catalog service to the client's open quote at a shop
func (c *Client) AddQuoteItem(ctx context.Context, clientID, shopID int64, serviceName string, price float64) (*models.Quote, error) {
	var quote models.Quote
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"clienteId":   strconv.FormatInt(clientID, 10),
			"oficinaId":   strconv.FormatInt(shopID, 10),
			"nomeServico": serviceName,
			"preco":       strconv.FormatFloat(price, 'f', 2, 64),
		}).
		Post(quotesBasePath + "/adicionar-item")

	if err := c.decode("add quote item", resp, err, &quote); err != nil {
		return nil, err
	}

	c.logger.Infof("Service %q added to quote %d for client %d", serviceName, quote.ID, clientID)
	return &quote, nil
}
