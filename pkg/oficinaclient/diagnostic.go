package oficinaclient

import (
	"context"

	"oficina-tg-client/internal/models"
)

// AnalyzeDiagnostic sends a problem description and an optional photo to the
// diagnostic analysis. It uses the longer diagnostic timeout.
func (c *Client) AnalyzeDiagnostic(ctx context.Context, req models.DiagnosticRequest) (*models.Diagnosis, error) {
	request := c.diagClient.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"descricao": req.Description,
		})

	if req.Image != nil && req.Image.Reader != nil {
		request = request.SetMultipartField("imagem", req.Image.FileName, req.Image.ContentType, req.Image.Reader)
	}

	var diagnosis models.Diagnosis
	resp, err := request.Post("/api/diagnostico/analisar")

	if err := c.decode("analyze diagnostic", resp, err, &diagnosis); err != nil {
		return nil, err
	}

	return &diagnosis, nil
}
