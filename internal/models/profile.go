package models

// Profile links a Telegram user to their platform ids
type Profile struct {
	TelegramID int64  `json:"telegram_id"`
	ClientID   int64  `json:"client_id"`
	ShopID     int64  `json:"shop_id"`
	ShopName   string `json:"shop_name,omitempty"`
	UpdatedAt  int64  `json:"updated_at"`
}
