package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/integraprice-api/internal/application/analytics"
	"github.com/jhoicas/integraprice-api/internal/application/auth"
	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/application/usecase"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/export"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/memory"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/integraprice-api/internal/interfaces/http"
	"github.com/jhoicas/integraprice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación completa sobre almacén en memoria
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI(t *testing.T, limiter *apphttp.RateLimiter) *fiber.App {
	t.Helper()
	store := storage.NewService(memory.NewKVStore(), logger.Nop())
	settingsUC := usecase.NewSettingsUseCase(store)
	pricingUC := usecase.NewPricingUseCase(settingsUC, nil)
	productUC := usecase.NewProductUseCase(store, pricingUC, nil)
	reportUC := usecase.NewReportUseCase(productUC, settingsUC, map[string]ports.StatementExporter{
		"pdf":  export.NewPDFExporter(),
		"xlsx": export.NewXLSXExporter(),
	}, nil)
	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SettingsUC:  settingsUC,
		PricingUC:   pricingUC,
		ProductUC:   productUC,
		ReportUC:    reportUC,
		DashboardUC: analytics.NewDashboardUseCase(store),
		AuthUC:      authUC,
		Health:      apphttp.NewHealthHandler("integraprice-test", "memory", nil),
		AuthLimiter: limiter,
		JWTSecret:   testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": testEmail, "password": "x"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decodeInto(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// pricingBody: Aluguel 1000, Material 5, margen 20, impuestos 6, tasas 4, volumen 100.
func pricingBody() fiber.Map {
	return fiber.Map{
		"variable_costs": []fiber.Map{{"name": "Material", "value": 5}},
		"desired_margin": "20",
		"volume":         100,
		"fixed_costs":    []fiber.Map{{"name": "Aluguel", "value": 1000}},
		"taxes":          []fiber.Map{{"name": "Simples Nacional", "value": 6}},
		"sales_fees":     []fiber.Map{{"name": "Taxa Cartão Crédito", "value": 4}},
	}
}

func saveProduct(t *testing.T, app *fiber.App, token, name string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"name": name, "sku": "SKU-" + name, "configuration": pricingBody(),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out struct {
		ID string `json:"id"`
	}
	decodeInto(t, resp, &out)
	require.NotEmpty(t, out.ID)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_LoginSesionLogout(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)

	resp := call(t, app, http.MethodGet, "/api/auth/session", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var user map[string]interface{}
	decodeInto(t, resp, &user)
	assert.Equal(t, testEmail, user["email"])
	assert.Equal(t, "ana", user["name"])

	resp = call(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/auth/session", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAuth_RegisterSinEmail(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{"name": "Ana"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeMap(t, resp)["code"])
}

func TestAuth_RegisterDevuelveToken(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{"name": "Ana Souza", "email": testEmail})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
		User  struct {
			Name   string `json:"name"`
			Avatar string `json:"avatar"`
		} `json:"user"`
	}
	decodeInto(t, resp, &out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Ana Souza", out.User.Name)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Ana+Souza", out.User.Avatar)
}

func TestAuth_RateLimit(t *testing.T) {
	app := buildAPI(t, apphttp.NewRateLimiter(0.001, 1))
	login(t, app)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": testEmail})
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", decodeMap(t, resp)["code"])
}

func TestRutasProtegidasSinToken(t *testing.T) {
	app := buildAPI(t, nil)
	for _, path := range []string{"/api/settings", "/api/products", "/api/reports/dre", "/api/dashboard/summary"} {
		resp := call(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_CRUDDeLineas(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)

	resp := call(t, app, http.MethodPost, "/api/settings/taxes", token, fiber.Map{"name": "ISS"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var line struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	decodeInto(t, resp, &line)
	assert.Equal(t, "ISS", line.Name)
	assert.Equal(t, "0", line.Value)

	resp = call(t, app, http.MethodPut, "/api/settings/taxes/"+line.ID, token, fiber.Map{"value": "5,abc"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &line)
	assert.Equal(t, "5", line.Value)

	resp = call(t, app, http.MethodDelete, "/api/settings/taxes/"+line.ID, token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodPut, "/api/settings/taxes/"+line.ID, token, fiber.Map{"name": "x"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "COST_LINE_NOT_FOUND", decodeMap(t, resp)["code"])
}

func TestSettings_ListaDesconocida(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)

	resp := call(t, app, http.MethodPost, "/api/settings/variable_costs", token, fiber.Map{"name": "x"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_LIST", decodeMap(t, resp)["code"])
}

func TestSettings_ActualizarEmpresa(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)

	resp := call(t, app, http.MethodPut, "/api/settings/company", token, fiber.Map{
		"trade_name": "Loja da Ana",
		"address":    fiber.Map{"city": "Recife"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/settings", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var s struct {
		Company struct {
			TradeName string `json:"trade_name"`
			Address   struct {
				City string `json:"city"`
			} `json:"address"`
		} `json:"company"`
	}
	decodeInto(t, resp, &s)
	assert.Equal(t, "Loja da Ana", s.Company.TradeName)
	assert.Equal(t, "Recife", s.Company.Address.City)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pricing
// ──────────────────────────────────────────────────────────────────────────────

func TestPricing_Calcular(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)

	resp := call(t, app, http.MethodPost, "/api/pricing/calculate", token, pricingBody())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var res struct {
		UnitCost   string `json:"unit_cost"`
		FinalPrice string `json:"final_price"`
		RealMargin string `json:"real_margin"`
		IsValid    bool   `json:"is_valid"`
	}
	decodeInto(t, resp, &res)
	assert.Equal(t, "15", res.UnitCost)
	assert.Equal(t, "21.43", res.FinalPrice)
	assert.Equal(t, "20", res.RealMargin)
	assert.True(t, res.IsValid)
}

func TestPricing_CuerpoInvalido(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/pricing/calculate", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeMap(t, resp)["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_GuardarListarEliminar(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	id := saveProduct(t, app, token, "Bolo")

	resp := call(t, app, http.MethodGet, "/api/products/"+id, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var p struct {
		Name       string `json:"name"`
		FinalPrice string `json:"final_price"`
	}
	decodeInto(t, resp, &p)
	assert.Equal(t, "Bolo", p.Name)
	assert.Equal(t, "21.43", p.FinalPrice)

	resp = call(t, app, http.MethodGet, "/api/products", token, nil)
	var list struct {
		Total int `json:"total"`
	}
	decodeInto(t, resp, &list)
	assert.Equal(t, 1, list.Total)

	resp = call(t, app, http.MethodDelete, "/api/products/"+id, token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = call(t, app, http.MethodDelete, "/api/products/"+id, token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/products/"+id, token, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeMap(t, resp)["code"])
}

func TestProducts_SinNombre(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	resp := call(t, app, http.MethodPost, "/api/products", token, fiber.Map{"configuration": pricingBody()})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestReports_SeleccionYDRE(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	id := saveProduct(t, app, token, "Bolo")

	resp := call(t, app, http.MethodPost, "/api/reports/selection/"+id+"/toggle", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var entry struct {
		Selected bool  `json:"selected"`
		Quantity int64 `json:"quantity"`
	}
	decodeInto(t, resp, &entry)
	assert.True(t, entry.Selected)

	resp = call(t, app, http.MethodPut, "/api/reports/selection/"+id, token, fiber.Map{"quantity": "10.9"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &entry)
	assert.Equal(t, int64(10), entry.Quantity)

	resp = call(t, app, http.MethodGet, "/api/reports/selection", token, nil)
	var sel []map[string]interface{}
	decodeInto(t, resp, &sel)
	require.Len(t, sel, 1)
	assert.Equal(t, id, sel[0]["product_id"])

	resp = call(t, app, http.MethodGet, "/api/reports/dre", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rep struct {
		ProductCount int                      `json:"product_count"`
		Lines        []map[string]interface{} `json:"lines"`
	}
	decodeInto(t, resp, &rep)
	assert.Equal(t, 1, rep.ProductCount)
	assert.NotEmpty(t, rep.Lines)

	resp = call(t, app, http.MethodDelete, "/api/reports/selection", token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/reports/dre", token, nil)
	decodeInto(t, resp, &rep)
	assert.Equal(t, 0, rep.ProductCount)
}

func TestReports_SeleccionConservaIDsEntreSolicitudes(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	first := saveProduct(t, app, token, "Bolo")
	second := saveProduct(t, app, token, "Torta")

	resp := call(t, app, http.MethodPost, "/api/reports/selection/"+first+"/toggle", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = call(t, app, http.MethodPut, "/api/reports/selection/"+second, token, fiber.Map{"quantity": 3})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = call(t, app, http.MethodPost, "/api/reports/selection/"+second+"/toggle", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Solicitudes intermedias reutilizan los buffers de fasthttp.
	call(t, app, http.MethodGet, "/api/products/"+first, token, nil)
	call(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)

	resp = call(t, app, http.MethodGet, "/api/reports/selection", token, nil)
	var sel []struct {
		ProductID string `json:"product_id"`
		Quantity  int64  `json:"quantity"`
	}
	decodeInto(t, resp, &sel)
	require.Len(t, sel, 2)
	assert.Equal(t, first, sel[0].ProductID)
	assert.Equal(t, int64(1), sel[0].Quantity)
	assert.Equal(t, second, sel[1].ProductID)
	assert.Equal(t, int64(3), sel[1].Quantity)

	resp = call(t, app, http.MethodGet, "/api/reports/dre", token, nil)
	var rep struct {
		ProductCount int    `json:"product_count"`
		TotalRevenue string `json:"total_revenue"`
	}
	decodeInto(t, resp, &rep)
	assert.Equal(t, 2, rep.ProductCount)
	// Ambos productos salen a 21,43: 4 unidades en total.
	assert.Equal(t, "85.71", rep.TotalRevenue)
}

func TestReports_DREExplicitoAgrupaRepetidos(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	id := saveProduct(t, app, token, "Bolo")

	resp := call(t, app, http.MethodPost, "/api/reports/dre", token, fiber.Map{
		"items": []fiber.Map{{"product_id": id, "quantity": 1}, {"product_id": id, "quantity": 1}},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rep struct {
		ProductCount int    `json:"product_count"`
		TotalRevenue string `json:"total_revenue"`
	}
	decodeInto(t, resp, &rep)
	assert.Equal(t, 1, rep.ProductCount)
	assert.Equal(t, "21.43", rep.TotalRevenue)
}

func TestReports_ToggleProductoDesconocido(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	resp := call(t, app, http.MethodPost, "/api/reports/selection/no-existe/toggle", token, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeMap(t, resp)["code"])
}

func TestReports_DREExplicito(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	id := saveProduct(t, app, token, "Bolo")

	resp := call(t, app, http.MethodPost, "/api/reports/dre", token, fiber.Map{
		"items": []fiber.Map{{"product_id": id, "quantity": 3}, {"product_id": "fantasma", "quantity": 7}},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rep struct {
		ProductCount int `json:"product_count"`
	}
	decodeInto(t, resp, &rep)
	assert.Equal(t, 1, rep.ProductCount)
}

func TestReports_Exportar(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	id := saveProduct(t, app, token, "Bolo")
	call(t, app, http.MethodPost, "/api/reports/selection/"+id+"/toggle", token, nil)

	resp := call(t, app, http.MethodGet, "/api/reports/dre/export?format=xlsx", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="dre_\d{4}-\d{2}-\d{2}\.xlsx"$`, resp.Header.Get("Content-Disposition"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(raw[:2]))

	resp = call(t, app, http.MethodGet, "/api/reports/dre/export", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp = call(t, app, http.MethodGet, "/api/reports/dre/export?format=csv", token, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeMap(t, resp)["code"])
}

func TestLogoutVaciaSeleccion(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	id := saveProduct(t, app, token, "Bolo")
	call(t, app, http.MethodPost, "/api/reports/selection/"+id+"/toggle", token, nil)

	resp := call(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/reports/selection", token, nil)
	var sel []map[string]interface{}
	decodeInto(t, resp, &sel)
	assert.Empty(t, sel)
}

func TestDashboard_Resumen(t *testing.T) {
	app := buildAPI(t, nil)
	token := login(t, app)
	saveProduct(t, app, token, "Bolo")
	saveProduct(t, app, token, "Torta")

	resp := call(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sum struct {
		ProductCount int                      `json:"product_count"`
		TopProducts  []map[string]interface{} `json:"top_products"`
	}
	decodeInto(t, resp, &sum)
	assert.Equal(t, 2, sum.ProductCount)
	assert.Len(t, sum.TopProducts, 2)
}

func TestHealth(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodGet, "/health", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["storage"])
}
