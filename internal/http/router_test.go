package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "dentalclinic/internal/config"
	"dentalclinic/internal/domain/models"
	h "dentalclinic/internal/http/handlers"
	"dentalclinic/internal/metrics"
	"dentalclinic/internal/repositories"
	"dentalclinic/internal/services"

	"github.com/gin-gonic/gin"
)

func testEnv() intconfig.Env {
	return intconfig.Env{
		DataSource:      intconfig.DataSourceMemory,
		DefaultPageSize: 15,
		Locale:          "pt-BR",
		ViewTTL:         time.Minute,
	}
}

func newTestRouter(t *testing.T, src services.Sources) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(h.NewAPI(testEnv(), src, nil, metrics.NewRecorder()))
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type pageResponse struct {
	Data []map[string]any `json:"data"`
	Meta struct {
		CurrentPage int `json:"currentPage"`
		PerPage     int `json:"perPage"`
		From        int `json:"from"`
		To          int `json:"to"`
		LastPage    int `json:"lastPage"`
		Total       int `json:"total"`
	} `json:"meta"`
	Spec struct {
		Page      int    `json:"page"`
		SortOrder string `json:"sort_order"`
	} `json:"spec"`
}

type viewResponse struct {
	ID    string `json:"id"`
	State struct {
		Status string       `json:"status"`
		Page   pageResponse `json:"page"`
		Error  string       `json:"error"`
	} `json:"state"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"data_source":"memory"`) {
		t.Fatalf("health: %d %s", rec.Code, rec.Body.String())
	}
}

func TestListScreens(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodGet, "/api/screens", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode[struct {
		Data []services.ScreenInfo `json:"data"`
	}](t, rec)
	if len(body.Data) != 7 {
		t.Fatalf("screens = %d, want 7", len(body.Data))
	}

	if rec := do(r, http.MethodGet, "/api/screens/unknown", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown screen status = %d", rec.Code)
	}
}

func TestScreenRecordsPaginates(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodGet, "/api/screens/procedures/records?per_page=10&page=2&sort=price&order=desc", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	page := decode[pageResponse](t, rec)
	if page.Meta.Total != 14 || page.Meta.LastPage != 2 || len(page.Data) != 4 {
		t.Fatalf("meta = %+v len=%d", page.Meta, len(page.Data))
	}
	if page.Meta.From != 11 || page.Meta.To != 14 || page.Spec.SortOrder != "desc" {
		t.Fatalf("bounds = %+v spec=%+v", page.Meta, page.Spec)
	}
	if got := page.Data[len(page.Data)-1]["code"]; got != "PRV-003" {
		t.Fatalf("cheapest procedure should be last, got %v", got)
	}
}

func TestScreenRecordsFilterAndClamp(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodGet, "/api/screens/receivables/records?filter[status]=pendente&page=9", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	page := decode[pageResponse](t, rec)
	if page.Meta.Total != 6 || page.Meta.CurrentPage != 1 || page.Spec.Page != 1 {
		t.Fatalf("meta = %+v spec=%+v", page.Meta, page.Spec)
	}
}

func TestScreenRecordsValidation(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	for _, path := range []string{
		"/api/screens/suppliers/records?order=up",
		"/api/screens/suppliers/records?page=0",
		"/api/screens/suppliers/records?per_page=500",
		"/api/screens/suppliers/records?filter[phone]=123",
	} {
		rec := do(r, http.MethodGet, path, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "validation_error") {
			t.Fatalf("%s: body = %s", path, rec.Body.String())
		}
	}
}

func TestScreenRecordsUnavailable(t *testing.T) {
	src := services.MemorySources(0)
	src.Budgets = repositories.MemorySource[models.Budget]{Name: "budgets", Fail: errors.New("timeout")}
	r := newTestRouter(t, src)

	rec := do(r, http.MethodGet, "/api/screens/budgets/records", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestExportPDF(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodGet, "/api/screens/suppliers/export.pdf?search=s%C3%A3o", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a PDF")
	}
}

func TestViewSessionFlow(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))

	rec := do(r, http.MethodPost, "/api/views", map[string]string{"screen": "patient-accesses"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", rec.Code, rec.Body.String())
	}
	view := decode[viewResponse](t, rec)
	if view.ID == "" || view.State.Status != "ready" || view.State.Page.Meta.Total != 12 {
		t.Fatalf("created view = %+v", view)
	}
	base := "/api/views/" + view.ID

	rec = do(r, http.MethodPut, base+"/filters", map[string]string{"field": "risk_level", "value": "baixo"})
	view = decode[viewResponse](t, rec)
	if rec.Code != http.StatusOK || view.State.Page.Meta.Total != 4 {
		t.Fatalf("filter: %d %+v", rec.Code, view.State.Page.Meta)
	}

	rec = do(r, http.MethodPut, base+"/page-size", map[string]int{"page_size": 3})
	view = decode[viewResponse](t, rec)
	if rec.Code != http.StatusOK || view.State.Page.Meta.LastPage != 2 || len(view.State.Page.Data) != 3 {
		t.Fatalf("page size: %d %+v", rec.Code, view.State.Page.Meta)
	}

	rec = do(r, http.MethodPut, base+"/page", map[string]int{"page": 5})
	view = decode[viewResponse](t, rec)
	if view.State.Page.Meta.CurrentPage != 2 || len(view.State.Page.Data) != 1 {
		t.Fatalf("page clamp: %+v", view.State.Page.Meta)
	}

	rec = do(r, http.MethodPut, base+"/sort", map[string]string{"key": "last_access"})
	if rec.Code != http.StatusOK {
		t.Fatalf("sort status = %d", rec.Code)
	}

	if rec := do(r, http.MethodPut, base+"/filters", map[string]string{"field": "email", "value": "x"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("non-filterable field status = %d", rec.Code)
	}
	if rec := do(r, http.MethodPut, base+"/search", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("empty body status = %d", rec.Code)
	}

	if rec := do(r, http.MethodDelete, base, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec := do(r, http.MethodGet, base, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", rec.Code)
	}
}

func TestCreateViewUnknownScreen(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodPost, "/api/views", map[string]string{"screen": "x"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateViewFailedFetchKeepsSession(t *testing.T) {
	src := services.MemorySources(0)
	src.Suppliers = repositories.MemorySource[models.Supplier]{Name: "suppliers", Fail: errors.New("timeout")}
	r := newTestRouter(t, src)

	rec := do(r, http.MethodPost, "/api/views", map[string]string{"screen": "suppliers"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	view := decode[viewResponse](t, rec)
	if view.ID == "" || view.State.Status != "error" || view.State.Error == "" {
		t.Fatalf("failed view = %+v", view)
	}
	if rec := do(r, http.MethodGet, "/api/views/"+view.ID, nil); rec.Code != http.StatusOK {
		t.Fatalf("session missing after failed load: %d", rec.Code)
	}
}

func TestDashboardSummary(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodGet, "/api/dashboard/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode[struct {
		Data []services.ScreenTotal `json:"data"`
	}](t, rec)
	if len(body.Data) != 7 || body.Data[0].Screen != services.ScreenPatientAccesses || body.Data[0].Total != 12 {
		t.Fatalf("summary = %+v", body.Data)
	}
}

func TestSlotCheck(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodGet, "/api/appointments/slot-check?dentist=Dr.+Ricardo+Moura&date=2024-06-10&time=10:30", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	got := decode[services.SlotCheck](t, rec)
	if got.Available || len(got.Conflicts) != 1 {
		t.Fatalf("slot = %+v", got)
	}

	if rec := do(r, http.MethodGet, "/api/appointments/slot-check?dentist=x&date=amanha&time=10:30", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid date status = %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	do(r, http.MethodGet, "/api/screens/suppliers/records", nil)

	rec := do(r, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "dentalclinic_queries_total") {
		t.Fatalf("metrics: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRequestIDOnErrors(t *testing.T) {
	r := newTestRouter(t, services.MemorySources(0))
	rec := do(r, http.MethodGet, "/api/views/nope", nil)
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), `"request_id"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
