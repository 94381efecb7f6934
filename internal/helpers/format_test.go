package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/supportchat"
)

func price(v float64) *float64 {
	return &v
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "A consultar", FormatPrice(nil))
	assert.Equal(t, "R$ 120,00", FormatPrice(price(120)))
	assert.Equal(t, "R$ 89,90", FormatPrice(price(89.9)))
	assert.Equal(t, "R$ 1.234,56", FormatPrice(price(1234.56)))
	assert.Equal(t, "R$ 1.000.000,00", FormatPrice(price(1000000)))
}

func TestFormatBookingDate(t *testing.T) {
	assert.Equal(t, "03/05/2024", FormatBookingDate("2024-05-03"))
	assert.Equal(t, "amanhã", FormatBookingDate("amanhã"))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 31, DaysIn(2024, time.December))
}

func TestFormatCalendarMarksDays(t *testing.T) {
	cal := FormatCalendar(2024, time.May, models.Availability{3: models.DayUnavailable, 4: models.DayInProgress})

	assert.Contains(t, cal, "Maio de 2024")
	assert.Contains(t, cal, " 3🔴")
	assert.Contains(t, cal, " 4🟡")
	assert.Contains(t, cal, " 5🟢")
	assert.Contains(t, cal, "31🟢")
	assert.NotContains(t, cal, "32")
}

func TestFormatQuoteHistoryEscapesNames(t *testing.T) {
	out := FormatQuoteHistory(&models.Quote{ID: 1, ShopName: "Auto <Center>", Status: models.QuotePending}, []models.Quote{
		{ID: 2, ShopName: "Zé & Filhos", Status: models.QuoteDone, Total: price(50)},
	})

	assert.Contains(t, out, "Auto &lt;Center&gt;")
	assert.Contains(t, out, "Zé &amp; Filhos")
	assert.Contains(t, out, "R$ 50,00")

	assert.Equal(t, "Nenhum orçamento pendente.", FormatQuoteHistory(nil, nil))
}

func TestFormatTranscript(t *testing.T) {
	out := FormatTranscript([]supportchat.Message{
		{Text: "1", Sender: supportchat.SenderClient},
		{Text: "Escolha", Sender: supportchat.SenderSupport},
	})

	lines := strings.Split(out, "\n\n")
	assert.Equal(t, []string{"Você: 1", "Suporte: Escolha"}, lines)
}
