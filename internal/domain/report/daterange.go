// Package report contiene la lógica pura de agregación: filtrado por rango de
// fechas, resolución de precios y serialización CSV. Todo es función de sus
// argumentos; nada aquí toca reloj, red ni almacenamiento.
package report

import "time"

// DateRange rango inclusivo [From, To] de fechas calendario "YYYY-MM-DD".
// Un extremo vacío significa sin límite por ese lado.
type DateRange struct {
	From string
	To   string
}

// Contains indica si una fecha cae dentro del rango.
// La comparación es léxica sobre el string ISO: con campos de ancho fijo y
// cero a la izquierda, el orden lexicográfico coincide con el cronológico.
// No se valida el formato; esa responsabilidad es de la capa de entrada.
func (r DateRange) Contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

// IsZero indica si el rango no acota nada.
func (r DateRange) IsZero() bool {
	return r.From == "" && r.To == ""
}

// Dated lo implementa cualquier registro con fecha calendario.
type Dated interface {
	DateKey() string
}

// FilterByDate devuelve el subconjunto de registros cuya fecha cae en el rango.
// Si el rango no acota, devuelve la entrada sin copiar. Nunca muta la entrada;
// con From > To el resultado es vacío (ningún string satisface ambos extremos).
func FilterByDate[T Dated](records []T, r DateRange) []T {
	if r.IsZero() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.DateKey()) {
			out = append(out, rec)
		}
	}
	return out
}

// DaysBefore resta días a una fecha "YYYY-MM-DD". Si la fecha no parsea se
// devuelve tal cual: la ventana degenerada filtrará léxicamente sin romper nada.
func DaysBefore(date string, days int) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -days).Format("2006-01-02")
}
