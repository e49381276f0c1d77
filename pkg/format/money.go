// Package format formatea valores para presentación (reportes PDF, etiquetas).
// La capa de agregación nunca formatea: trabaja con enteros en so'm.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale uzbeko: agrupa miles con espacio, como Intl.NumberFormat("uz-UZ").
var printer = message.NewPrinter(language.Uzbek)

// MoneyUZS formatea un monto en so'm: 180000 -> "180 000 so'm".
func MoneyUZS(amount int64) string {
	return printer.Sprintf("%d", amount) + " so'm"
}

// DateLabel convierte "YYYY-MM-DD" en "DD.MM.YYYY" para mostrar.
// Si el string no tiene la forma esperada, se devuelve tal cual.
func DateLabel(date string) string {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return date
	}
	return date[8:10] + "." + date[5:7] + "." + date[0:4]
}
