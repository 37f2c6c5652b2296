package http_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
)

func TestRouter_RutaDesconocida_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	resp := doRequest(t, env.app, http.MethodGet, "/no/existe", "", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", decodeMap(t, resp)["error"])
}

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)
	resp := doRequest(t, env.app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeMap(t, resp)["status"])
}

func TestRouter_RutasProtegidasSinToken_Retorna403(t *testing.T) {
	env := newTestEnv(t)
	routes := []struct{ method, path string }{
		{http.MethodGet, "/users/allUsers"},
		{http.MethodPost, "/users"},
		{http.MethodGet, "/roles"},
		{http.MethodGet, "/suppliers/allUsers"},
		{http.MethodGet, "/materials"},
		{http.MethodGet, "/productsMaterials/relation"},
		{http.MethodPost, "/products"},
		{http.MethodDelete, "/products/1"},
		{http.MethodGet, "/products/1/materials/pdf"},
		{http.MethodPost, "/sliders"},
	}
	for _, r := range routes {
		resp := doRequest(t, env.app, r.method, r.path, "", nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s", r.method, r.path)
		resp.Body.Close()
	}
}

func TestRouter_ProductosPublicos(t *testing.T) {
	env := newTestEnv(t)
	env.products.On("List", mock.Anything).Return([]*entity.Product{
		{ID: 1, Name: "Vela", Price: decimal.RequireFromString("450"), IsAvailable: true},
	}, nil)
	env.sliders.On("ListActive", mock.Anything).Return([]*entity.Slider{}, nil)

	resp := doRequest(t, env.app, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)
	assert.Equal(t, "Vela", list[0]["name"])

	resp = doRequest(t, env.app, http.MethodGet, "/sliders", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Escenario: crear un usuario con token y luego iniciar sesión con esas credenciales.
// La contraseña distingue mayúsculas y la respuesta nunca incluye el hash.
func TestRouter_CrearUsuarioYLogin(t *testing.T) {
	env := newTestEnv(t)
	var created *entity.User
	env.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
			created.ID = 42
		}).
		Return(nil)

	resp := doRequest(t, env.app, http.MethodPost, "/users", env.bearer(t), map[string]any{
		"name": "Luis", "lastName": "Gómez", "phone": "809", "email": "luis@piki.do",
		"password": "Secret123!", "role_id": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Usuario creado exitosamente", decodeMap(t, resp)["message"])
	require.NotNil(t, created)
	assert.NotEqual(t, "Secret123!", created.Password)

	env.users.On("GetByEmail", mock.Anything, "luis@piki.do").Return(created, nil)

	resp = doRequest(t, env.app, http.MethodPost, "/auth/login", "",
		map[string]string{"email": "luis@piki.do", "password": "secret123!"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Contraseña / Usuario no valido", decodeMap(t, resp)["error"])

	resp = doRequest(t, env.app, http.MethodPost, "/auth/login", "",
		map[string]string{"email": "luis@piki.do", "password": "Secret123!"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logged := decodeMap(t, resp)["loggedUser"].(map[string]any)
	assert.EqualValues(t, 42, logged["id"])
	assert.NotContains(t, logged, "password")
	token, _ := logged["token"].(string)
	require.NotEmpty(t, token)
	claims, err := env.codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestRouter_PasswordDemasiadoLarga_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp := doRequest(t, env.app, http.MethodPost, "/users", env.bearer(t), map[string]any{
		"name": "Luis", "lastName": "Gómez", "phone": "809", "email": "luis@piki.do",
		"password": strings.Repeat("x", 80), "role_id": 2,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeMap(t, resp)["code"])
	env.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRouter_ProductoNoDisponible_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp := doRequest(t, env.app, http.MethodPost, "/products", env.bearer(t), map[string]any{
		"name": "Vela", "description": "d", "price": 10, "stock": 3, "isAvailable": false,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Todos los campos son obligatorios", decodeMap(t, resp)["error"])
	env.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRouter_MaterialNoDisponible_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp := doRequest(t, env.app, http.MethodPost, "/materials", env.bearer(t), map[string]any{
		"name": "Cera", "description": "x", "isAvailable": false, "cost": 5,
		"date": "2024-05-01", "supplier_id": 1, "quantity": 1, "quantityByUnit": 1, "costByUnit": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Todos los campos son obligatorios", decodeMap(t, resp)["error"])
	env.materials.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRouter_CrearUsuarioEmailDuplicado_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEmailAlreadyExists)

	resp := doRequest(t, env.app, http.MethodPost, "/users", env.bearer(t), map[string]any{
		"name": "Luis", "lastName": "Gómez", "phone": "809", "email": "ana@piki.do",
		"password": "x", "role_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decodeMap(t, resp)["code"])
}

func TestRouter_SuplidorPorIDEsArreglo(t *testing.T) {
	env := newTestEnv(t)
	env.suppliers.On("GetByID", mock.Anything, int64(3)).Return(&entity.Supplier{ID: 3, Name: "Ceras RD"}, nil)
	env.suppliers.On("GetByID", mock.Anything, int64(4)).Return(nil, nil)

	resp := doRequest(t, env.app, http.MethodGet, "/suppliers/3", env.bearer(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)
	assert.Equal(t, "Ceras RD", list[0]["name"])

	resp = doRequest(t, env.app, http.MethodGet, "/suppliers/4", env.bearer(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Suplidor no encontrado", decodeMap(t, resp)["error"])
}

func TestRouter_IDNoNumerico_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp := doRequest(t, env.app, http.MethodGet, "/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decodeMap(t, resp)["code"])
}

func TestRouter_MaterialCampoFaltante_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp := doRequest(t, env.app, http.MethodPost, "/materials", env.bearer(t), map[string]any{
		"name": "Cera", "description": "x", "isAvailable": true, "cost": 0,
		"date": "2024-05-01", "supplier_id": 1, "quantity": 1, "quantityByUnit": 1, "costByUnit": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Todos los campos son obligatorios", decodeMap(t, resp)["error"])
	env.materials.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRouter_ErrorInterno_Retorna500Generico(t *testing.T) {
	env := newTestEnv(t)
	env.roles.On("List", mock.Anything).Return(nil, assert.AnError)

	resp := doRequest(t, env.app, http.MethodGet, "/roles", env.bearer(t), nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Error al obtener los roles", body["error"])
	assert.NotContains(t, body["error"], assert.AnError.Error())
}
