package report

import (
	"fmt"
	"strings"
)

// escapeField convierte un valor a su forma CSV: se envuelve en comillas
// dobles (duplicando las internas) solo si contiene coma, comilla o salto de
// línea; nil se emite como string vacío.
func escapeField(v interface{}) string {
	var s string
	if v != nil {
		s = fmt.Sprintf("%v", v)
	}
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// BuildCSV serializa un rollup tabular: primera línea el encabezado, una línea
// por fila, campos unidos por coma y líneas unidas por "\n" (sin salto final).
// No ordena ni filtra; el orden de entrada es responsabilidad del llamador,
// así que salidas idénticas requieren entradas idénticas.
func BuildCSV(headers []string, rows [][]interface{}) string {
	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(h))
	}
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(field))
		}
	}
	return b.String()
}
