package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"vitamin-tracker/internal/router"
)

func TestHTTP_EndToEnd_VitaminsAndIntake(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	userID := "u1"

	// 1) Crea vitamina; userId del body se ignora
	var vit struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Dosage string `json:"dosage"`
		UserID string `json:"userId"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/api/vitamins", userID, map[string]any{
			"name":   "Vitamin D",
			"dosage": "1000IU",
			"userId": "intruder",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create vitamin, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &vit)
		if vit.ID != 1 || vit.UserID != userID || vit.Name != "Vitamin D" {
			t.Fatalf("unexpected vitamin body=%s", string(body))
		}
	}
	vitPath := "/api/vitamins/" + strconv.FormatInt(vit.ID, 10)

	// 2) Lista
	{
		st, body := doReq(t, ts.URL, "GET", "/api/vitamins", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 vitamin, got %d", len(items))
		}
	}

	// 3) Otro usuario no la ve ni la puede editar
	{
		st, body := doReq(t, ts.URL, "GET", "/api/vitamins", "u2", nil)
		if st != http.StatusOK || string(bytes.TrimSpace(body)) != "[]" {
			t.Fatalf("expected empty list for u2, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "PATCH", vitPath, "u2", map[string]any{"dosage": "5IU"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 patch by u2, got %d", st)
		}
	}

	// 4) PATCH parcial
	{
		st, body := doReq(t, ts.URL, "PATCH", vitPath, userID, map[string]any{"dosage": "2000IU"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["name"] != "Vitamin D" || got["dosage"] != "2000IU" {
			t.Fatalf("unexpected patch result body=%s", string(body))
		}
	}

	// 5) Upsert dos veces: mismo id
	var firstID float64
	{
		st, body := doReq(t, ts.URL, "POST", "/api/vitamin-intake", userID, map[string]any{
			"vitaminId": vit.ID,
			"date":      "2024-01-01",
			"taken":     true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 upsert, got %d body=%s", st, string(body))
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		firstID, _ = got["id"].(float64)
		if got["taken"] != true || got["date"] != "2024-01-01" || got["userId"] != userID {
			t.Fatalf("unexpected upsert body=%s", string(body))
		}

		// taken omitido => false
		st, body = doReq(t, ts.URL, "POST", "/api/vitamin-intake", userID, map[string]any{
			"vitaminId": vit.ID,
			"date":      "2024-01-01T10:00:00Z",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 second upsert, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &got)
		if got["id"] != firstID || got["taken"] != false {
			t.Fatalf("expected same record with taken=false, body=%s", string(body))
		}
	}

	// 6) Intake del día
	{
		st, body := doReq(t, ts.URL, "GET", "/api/vitamin-intake?date=2024-01-01", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list intake, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0]["id"] != firstID {
			t.Fatalf("expected the single record, body=%s", string(body))
		}
	}

	// 7) Summary
	{
		_, _ = doReq(t, ts.URL, "POST", "/api/vitamin-intake", userID, map[string]any{
			"vitaminId": vit.ID, "date": "2024-01-01", "taken": true,
		})
		st, body := doReq(t, ts.URL, "GET", "/api/vitamin-intake/summary?date=2024-01-01", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["total"] != float64(1) || got["taken"] != float64(1) || got["ratio"] != float64(1) {
			t.Fatalf("unexpected summary body=%s", string(body))
		}
	}

	// 8) DELETE siempre 204
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "DELETE", vitPath, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete #%d, got %d body=%s", i+1, st, string(body))
		}
	}
	if st, _ := doReq(t, ts.URL, "PATCH", vitPath, userID, map[string]any{"name": "x"}); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_MissingUserIsUnauthorized(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []struct{ method, path string }{
		{"GET", "/api/vitamins"},
		{"POST", "/api/vitamins"},
		{"PATCH", "/api/vitamins/1"},
		{"DELETE", "/api/vitamins/1"},
		{"GET", "/api/vitamin-intake?date=2024-01-01"},
		{"POST", "/api/vitamin-intake"},
		{"GET", "/api/vitamin-intake/summary?date=2024-01-01"},
	}
	for _, c := range cases {
		st, body := doReq(t, ts.URL, c.method, c.path, "", map[string]any{})
		if st != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d body=%s", c.method, c.path, st, string(body))
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["code"] != "UNAUTHORIZED" {
			t.Fatalf("%s %s: unexpected body=%s", c.method, c.path, string(body))
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

// El handler de swagger lee r.RequestURI, que solo viene completo en un request real.
func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d body=%s", st, string(body))
	}
	if !bytes.Contains(body, []byte(`"/vitamin-intake"`)) || !bytes.Contains(body, []byte(`"/api"`)) {
		t.Fatalf("unexpected swagger doc body=%s", string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, userID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
