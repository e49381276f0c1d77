package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ruxshona/bakery-api/pkg/jwt"
)

const (
	testSecret = "secreto-de-pruebas"
	testIssuer = "ruxshona-test"
)

// newProtectedApp levanta una app mínima con el middleware de auth y una ruta
// que devuelve lo que el middleware dejó en el contexto.
func newProtectedApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(testSecret)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": GetUserID(c), "role": GetRole(c)})
	})
	app.Get("/protegida", handlers...)
	return app
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	token, err := jwt.Generate(testSecret, "usr_1", "admin", testIssuer, 15)
	require.NoError(t, err)

	app := newProtectedApp()
	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newProtectedApp()
	req := httptest.NewRequest("GET", "/protegida", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode,
		"sin Authorization header no hay acceso")
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newProtectedApp()

	for _, header := range []string{"Basic abc123", "Bearer", "solo-el-token"} {
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode,
			"header %q debe rechazarse", header)
	}
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "usr_1", "admin", testIssuer, 15)
	require.NoError(t, err)

	app := newProtectedApp()
	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	token, err := jwt.Generate(testSecret, "usr_1", "admin", testIssuer, -5)
	require.NoError(t, err)

	app := newProtectedApp()
	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_RolDistinto(t *testing.T) {
	token, err := jwt.Generate(testSecret, "usr_2", "kassir", testIssuer, 15)
	require.NoError(t, err)

	app := newProtectedApp(RequireRole("admin"))
	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode,
		"un kassir no entra a rutas de admin")
}

func TestRequireRole_RolCorrecto(t *testing.T) {
	token, err := jwt.Generate(testSecret, "usr_1", "admin", testIssuer, 15)
	require.NoError(t, err)

	app := newProtectedApp(RequireRole("admin"))
	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWT_GenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "usr_7", "kassir", testIssuer, 15)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "usr_7", userID)
	assert.Equal(t, "kassir", role)
}
