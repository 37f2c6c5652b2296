package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/neryad/piki-backend/internal/application/auth"
	"github.com/neryad/piki-backend/internal/application/usecase"
	apphttp "github.com/neryad/piki-backend/internal/interfaces/http"
	"github.com/neryad/piki-backend/internal/mocks"
	pkgjwt "github.com/neryad/piki-backend/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "piki-backend-test"
)

var testIdentity = pkgjwt.Identity{ID: 1, Email: "ana@piki.do"}

// testEnv app completa con casos de uso reales sobre repositorios mock.
type testEnv struct {
	app       *fiber.App
	codec     *pkgjwt.Codec
	users     *mocks.MockUserRepository
	roles     *mocks.MockRoleRepository
	suppliers *mocks.MockSupplierRepository
	materials *mocks.MockMaterialRepository
	products  *mocks.MockProductRepository
	pm        *mocks.MockProductMaterialRepository
	sliders   *mocks.MockSliderRepository
	storage   *mocks.MockImageStorage
	renderer  *mocks.MockBillOfMaterialsRenderer
}

type envOption func(*apphttp.RouterDeps)

func withLoginLimiter(perMinute, burst int) envOption {
	return func(d *apphttp.RouterDeps) { d.LoginLimiter = apphttp.NewLoginLimiter(perMinute, burst) }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	codec, err := pkgjwt.NewCodec(testJWTSecret, testIssuer, time.Hour)
	require.NoError(t, err)

	env := &testEnv{
		codec:     codec,
		users:     new(mocks.MockUserRepository),
		roles:     new(mocks.MockRoleRepository),
		suppliers: new(mocks.MockSupplierRepository),
		materials: new(mocks.MockMaterialRepository),
		products:  new(mocks.MockProductRepository),
		pm:        new(mocks.MockProductMaterialRepository),
		sliders:   new(mocks.MockSliderRepository),
		storage:   new(mocks.MockImageStorage),
		renderer:  new(mocks.MockBillOfMaterialsRenderer),
	}
	deps := apphttp.RouterDeps{
		AuthUC:            auth.NewAuthUseCase(env.users, codec),
		UserUC:            usecase.NewUserUseCase(env.users),
		RoleUC:            usecase.NewRoleUseCase(env.roles),
		SupplierUC:        usecase.NewSupplierUseCase(env.suppliers),
		MaterialUC:        usecase.NewMaterialUseCase(env.materials),
		ProductUC:         usecase.NewProductUseCase(env.products, env.pm, env.storage, env.renderer),
		ProductMaterialUC: usecase.NewProductMaterialUseCase(env.pm),
		SliderUC:          usecase.NewSliderUseCase(env.sliders, env.storage),
		Codec:             codec,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	env.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(env.app, deps)
	return env
}

// bearer genera un header Authorization válido.
func (e *testEnv) bearer(t *testing.T) string {
	t.Helper()
	tok, _, err := e.codec.Issue(testIdentity)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doRequest lanza la petición contra la app y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
