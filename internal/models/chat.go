package models

// ChatSession is the support chat record owned by the backend
type ChatSession struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ChatMessage is a support chat message persisted by the backend
type ChatMessage struct {
	ID           int64     `json:"id"`
	Content      string    `json:"conteudo"`
	SentAt       Timestamp `json:"dataEnvio"`
	SentByClient bool      `json:"enviadaPeloCliente"`
}
