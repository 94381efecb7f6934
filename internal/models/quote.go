package models

// QuoteStatus is the lifecycle status of a quote
type QuoteStatus string

const (
	QuotePending          QuoteStatus = "PENDENTE"
	QuoteAwaitingApproval QuoteStatus = "AGUARDANDO_APROVACAO"
	QuoteApproved         QuoteStatus = "APROVADO"
	QuoteInProgress       QuoteStatus = "EM_ANDAMENTO"
	QuoteDone             QuoteStatus = "CONCLUIDO"
)

// Quote represents a workshop estimate
type Quote struct {
	ID          int64       `json:"id"`
	Status      QuoteStatus `json:"status"`
	ShopName    string      `json:"oficinaNome,omitempty"`
	Description string      `json:"descricaoServicos,omitempty"`
	Total       *float64    `json:"valorTotal,omitempty"`
}

// AwaitsApproval reports whether the customer still has to answer the quote
func (q *Quote) AwaitsApproval() bool {
	return q.Status == QuotePending || q.Status == QuoteAwaitingApproval
}
