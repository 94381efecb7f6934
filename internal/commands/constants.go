package commands

// TelegramCommands contains all commands for the Telegram bot
const (
	// Main commands
	Start  = "/start"
	Cancel = "Cancelar"

	// Navigation commands
	ReturnToMainMenu = "Voltar ao menu"

	// Home screen commands
	Schedule    = "Agendar"
	MyBookings  = "Meus agendamentos"
	NearbyShops = "Oficinas próximas"
	Services    = "Serviços"
	Quotes      = "Orçamentos"
	Diagnostic  = "Diagnóstico"
	Support     = "Suporte"

	// Quote commands
	AcceptQuote   = "Aceitar orçamento"
	FinalizeQuote = "Finalizar serviço"

	// Support chat commands
	FinalizeChat = "Finalizar chat"
	NewChat      = "Novo chat"

	// Confirmation commands
	Confirm = "Confirmar"
)
