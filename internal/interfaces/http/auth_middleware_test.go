package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewops/brewops-api/internal/domain/entity"
	apphttp "github.com/brewops/brewops-api/internal/interfaces/http"
	pkgjwt "github.com/brewops/brewops-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "brewops-test"
	testExpMin    = 60
)

// stubIdentityStore resuelve identidades desde un mapa en memoria.
type stubIdentityStore struct {
	users map[string]*entity.User
}

func (s *stubIdentityStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	return s.users[id], nil
}

// testUser fabrica un usuario activo con el rol dado y lo registra en el stub.
func testUser(store *stubIdentityStore, id string, role entity.Role, active bool) *entity.User {
	u := &entity.User{
		ID:        id,
		Username:  "user-" + id,
		Email:     "user-" + id + "@brewops.local",
		FirstName: "Nombre",
		LastName:  "Apellido",
		Role:      role,
		IsActive:  active,
	}
	store.users[id] = u
	return u
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT y resolver la identidad contra el stub
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(store *stubIdentityStore, allowedRoles ...entity.Role) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			ident := apphttp.GetIdentity(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": ident.Role.String(),
			})
		},
	)
	return app
}

// tokenFor genera un JWT válido para el user ID indicado.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newStore() *stubIdentityStore {
	return &stubIdentityStore{users: make(map[string]*entity.User)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	store := newStore()
	testUser(store, "u1", entity.RoleAdmin, true)
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, "u1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe ser admin")
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_StaffAccedeRutaAdminOStaff(t *testing.T) {
	store := newStore()
	testUser(store, "u2", entity.RoleStaff, true)
	app := buildTestApp(store, entity.RoleAdmin, entity.RoleStaff)

	resp := doRequest(t, app, tokenFor(t, "u2"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"staff debe poder acceder a ruta que permite admin o staff")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_SupplierBloqueadoEnRutaAdmin(t *testing.T) {
	store := newStore()
	testUser(store, "u3", entity.RoleSupplier, true)
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, "u3"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"supplier no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: staff bloqueado en ruta solo supplier → HTTP 403.
func TestRequireRole_StaffBloqueadoEnRutaSupplier(t *testing.T) {
	store := newStore()
	testUser(store, "u4", entity.RoleStaff, true)
	app := buildTestApp(store, entity.RoleSupplier)

	resp := doRequest(t, app, tokenFor(t, "u4"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	store := newStore()
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 4: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	store := newStore()
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 5: Token válido pero la cuenta ya no existe → HTTP 401 USER_NOT_FOUND.
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	store := newStore()
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, "fantasma"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USER_NOT_FOUND")
}

// Caso 6: Cuenta desactivada después de emitido el token → HTTP 401.
// La desactivación bite aunque el JWT siga vigente porque la identidad se
// relee de la DB en cada request.
func TestAuthMiddleware_CuentaDesactivada_Retorna401(t *testing.T) {
	store := newStore()
	testUser(store, "u5", entity.RoleManager, false)
	app := buildTestApp(store, entity.RoleManager)

	resp := doRequest(t, app, tokenFor(t, "u5"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USER_NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — identidad en locals
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_CargaIdentidad(t *testing.T) {
	store := newStore()
	u := testUser(store, "u6", entity.RoleManager, true)

	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, store), func(c *fiber.Ctx) error {
		ident := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{
			"user_id":  ident.ID,
			"username": ident.Username,
			"role":     ident.Role.String(),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "u6"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, u.ID, body["user_id"])
	assert.Equal(t, u.Username, body["username"])
	assert.Equal(t, "manager", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u7", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u7", userID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, "u8", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u9", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
