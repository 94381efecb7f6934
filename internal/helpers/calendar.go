package helpers

import (
	"fmt"
	"strings"
	"time"

	"oficina-tg-client/internal/models"
)

var weekdayHeader = []string{"D", "S", "T", "Q", "Q", "S", "S"}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// DaysIn returns the number of days of a month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthName returns the Portuguese name of a month
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return month.String()
	}
	return monthNames[month-1]
}

// StatusMarker returns the colored marker of a day status
func StatusMarker(status models.DayStatus) string {
	switch status {
	case models.DayUnavailable:
		return "🔴"
	case models.DayInProgress:
		return "🟡"
	default:
		return "🟢"
	}
}

// FormatCalendar formats a month grid with one status marker per day
func FormatCalendar(year int, month time.Month, availability models.Availability) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s de %d</b>\n", MonthName(month), year))
	sb.WriteString("<pre>\n")

	for _, d := range weekdayHeader {
		sb.WriteString(fmt.Sprintf(" %-4s", d))
	}
	sb.WriteString("\n")

	offset := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	for i := 0; i < offset; i++ {
		sb.WriteString("     ")
	}

	days := DaysIn(year, month)
	for day := 1; day <= days; day++ {
		sb.WriteString(fmt.Sprintf("%2d%s ", day, StatusMarker(availability.Status(day))))
		if (offset+day)%7 == 0 && day != days {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n</pre>\n")
	sb.WriteString("🟢 Disponível  🟡 Em processo  🔴 Indisponível")
	return sb.String()
}
