package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ruxshona/bakery-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests BuildCSV: el contrato de escapado es exacto: comillas solo cuando el
// campo contiene coma, comilla o salto de línea, comillas internas duplicadas,
// sin salto de línea final.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildCSV_VectorExacto(t *testing.T) {
	out := report.BuildCSV(
		[]string{"A", "B"},
		[][]interface{}{{"x,y", `z"w`}},
	)

	assert.Equal(t, "A,B\n\"x,y\",\"z\"\"w\"", out,
		"el escapado debe coincidir exactamente con el vector de referencia")
}

func TestBuildCSV_CampoSimpleSinComillas(t *testing.T) {
	out := report.BuildCSV([]string{"Name"}, [][]interface{}{{"Napoleon tort"}})
	assert.Equal(t, "Name\nNapoleon tort", out,
		"un campo sin caracteres especiales no se envuelve en comillas")
}

func TestBuildCSV_SaltosDeLineaEnCampo(t *testing.T) {
	out := report.BuildCSV([]string{"Note"}, [][]interface{}{{"línea1\nlínea2"}, {"con\rretorno"}})

	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, "Note", lines[0])
	assert.Contains(t, out, "\"línea1\nlínea2\"", "un salto de línea fuerza las comillas")
	assert.Contains(t, out, "\"con\rretorno\"", "un retorno de carro fuerza las comillas")
}

func TestBuildCSV_NilComoVacio(t *testing.T) {
	out := report.BuildCSV([]string{"Price"}, [][]interface{}{{nil}})
	assert.Equal(t, "Price\n", out, "nil se serializa como campo vacío")
}

func TestBuildCSV_SinFilas(t *testing.T) {
	out := report.BuildCSV([]string{"A", "B"}, nil)
	assert.Equal(t, "A,B", out, "sin filas la salida es solo el encabezado, sin salto final")
}

func TestBuildCSV_SinSaltoFinal(t *testing.T) {
	out := report.BuildCSV([]string{"A"}, [][]interface{}{{"1"}, {"2"}})
	assert.False(t, strings.HasSuffix(out, "\n"), "la salida nunca termina en salto de línea")
	assert.Equal(t, "A\n1\n2", out)
}

func TestBuildCSV_NumerosSinFormato(t *testing.T) {
	out := report.BuildCSV([]string{"Amount"}, [][]interface{}{{int64(250000)}, {true}})
	assert.Equal(t, "Amount\n250000\ntrue", out,
		"los valores no string se serializan con su forma natural")
}
