package helpers

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"oficina-tg-client/internal/constants"
	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/supportchat"
)

// FormatPrice formats a value in Brazilian reais. A missing price reads "A consultar".
func FormatPrice(price *float64) string {
	if price == nil {
		return "A consultar"
	}
	return "R$ " + formatDecimal(*price)
}

func formatDecimal(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	raw := strconv.FormatFloat(value, 'f', 2, 64)
	intPart, fracPart := raw[:len(raw)-3], raw[len(raw)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// FormatBookingDate converts a backend date (YYYY-MM-DD) to DD/MM/YYYY
func FormatBookingDate(date string) string {
	parsed, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return parsed.Format(constants.DisplayDateFormat)
}

// FormatBookings formats the list of appointments of a user
func FormatBookings(bookings []models.Booking) string {
	if len(bookings) == 0 {
		return "Você ainda não tem agendamentos."
	}

	var sb strings.Builder
	sb.WriteString("<b>Meus agendamentos:</b>\n\n")
	for _, b := range bookings {
		sb.WriteString(fmt.Sprintf("📅 %s  Oficina #%d  <i>%s</i>\n",
			FormatBookingDate(b.Date), b.ShopID, html.EscapeString(string(b.Status))))
	}
	return sb.String()
}

// FormatShops formats a numbered list of shops
func FormatShops(shops []models.Shop) string {
	var sb strings.Builder
	sb.WriteString("<b>Oficinas próximas:</b>\n\n")
	for i, s := range shops {
		sb.WriteString(fmt.Sprintf("%d. <b>%s</b>\n", i+1, html.EscapeString(s.Name)))
		if s.Address != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", html.EscapeString(s.Address)))
		}
	}
	return sb.String()
}

// FormatServices formats a numbered list of catalog services
func FormatServices(services []models.Service) string {
	var sb strings.Builder
	for i, s := range services {
		sb.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, html.EscapeString(s.Name), FormatPrice(s.Price)))
	}
	return sb.String()
}

// FormatQuote formats a single quote card
func FormatQuote(q models.Quote) string {
	var sb strings.Builder
	shop := q.ShopName
	if shop == "" {
		shop = "Oficina"
	}
	sb.WriteString(fmt.Sprintf("<b>%s</b>  #%d\n", html.EscapeString(shop), q.ID))
	sb.WriteString(fmt.Sprintf("Status: <i>%s</i>\n", html.EscapeString(string(q.Status))))
	if q.Description != "" {
		sb.WriteString(fmt.Sprintf("Serviços: %s\n", html.EscapeString(q.Description)))
	}
	sb.WriteString(fmt.Sprintf("Total: %s\n", FormatPrice(q.Total)))
	return sb.String()
}

// FormatQuoteHistory formats the highlighted quote followed by the others
func FormatQuoteHistory(highlight *models.Quote, others []models.Quote) string {
	if highlight == nil {
		return "Nenhum orçamento pendente."
	}

	var sb strings.Builder
	sb.WriteString("<b>Orçamento em destaque</b>\n\n")
	sb.WriteString(FormatQuote(*highlight))

	if len(others) > 0 {
		sb.WriteString("\n<b>Histórico</b>\n")
		for _, q := range others {
			sb.WriteString(fmt.Sprintf("• #%d %s  %s  %s\n", q.ID, html.EscapeString(q.ShopName),
				html.EscapeString(string(q.Status)), FormatPrice(q.Total)))
		}
	}
	return sb.String()
}

// FormatTranscript renders chat messages as plain text lines
func FormatTranscript(messages []supportchat.Message) string {
	var sb strings.Builder
	for i, m := range messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		who := "Suporte"
		if m.Sender == supportchat.SenderClient {
			who = "Você"
		}
		sb.WriteString(fmt.Sprintf("%s: %s", who, m.Text))
	}
	return sb.String()
}
