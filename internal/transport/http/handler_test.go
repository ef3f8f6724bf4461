package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"childscreen-service/internal/app"
	"childscreen-service/internal/credential"
	"childscreen-service/internal/infra/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	auth := app.NewAuthService(credential.BuildRegistry(), memory.NewUsageStore(), 0)
	handler := NewHandler(auth, app.NewAssessmentService(), []byte("test-secret"))

	mux := http.NewServeMux()
	handler.Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func TestLoginEndpointLifecycle(t *testing.T) {
	server := newTestServer(t)

	// Fresh card succeeds and reports its affinity.
	resp := postJSON(t, server.URL+"/api/login", map[string]string{
		"cardNo": "GT0001", "password": "113342", "instrument": "SENSORY",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var login struct {
		OK         bool   `json:"ok"`
		Instrument string `json:"instrument"`
		IsAdmin    bool   `json:"isAdmin"`
		Reason     string `json:"reason"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&login)
	resp.Body.Close()
	if !login.OK || login.Instrument != "SENSORY" || login.IsAdmin {
		t.Fatalf("unexpected login response: %+v", login)
	}

	// Second use inside the window is locked.
	resp = postJSON(t, server.URL+"/api/login", map[string]string{
		"cardNo": "GT0001", "password": "113342", "instrument": "SENSORY",
	})
	if resp.StatusCode != http.StatusLocked {
		t.Fatalf("expected 423, got %d", resp.StatusCode)
	}
	_ = json.NewDecoder(resp.Body).Decode(&login)
	resp.Body.Close()
	if login.OK || login.Reason == "" {
		t.Fatalf("expected lock reason, got %+v", login)
	}
}

func TestLoginEndpointAffinityMismatch(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/login", map[string]string{
		"cardNo": "GT0002", "password": "", "instrument": "BEHAVIORAL",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong secret should be 401, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Right secret, wrong questionnaire: rejected before the card is consumed.
	resp = postJSON(t, server.URL+"/api/login", map[string]string{
		"cardNo": "GT0002", "password": "114339", "instrument": "BEHAVIORAL",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for affinity mismatch, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// The mismatch must not have started the cooldown.
	resp = postJSON(t, server.URL+"/api/login", map[string]string{
		"cardNo": "GT0002", "password": "114339", "instrument": "SENSORY",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("card should still be fresh, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestInstrumentEndpointAgeFilter(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/instruments/SENSORY?age=5.5")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var payload struct {
		Title string `json:"title"`
		Items []struct {
			ID int `json:"id"`
		} `json:"items"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	resp.Body.Close()
	if len(payload.Items) != 60 {
		t.Fatalf("expected 60 items at age 5.5, got %d", len(payload.Items))
	}
	if payload.Title == "" {
		t.Fatal("expected a title")
	}

	resp, _ = http.Get(server.URL + "/api/instruments/UNKNOWN")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown instrument, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestScoreEndpoint(t *testing.T) {
	server := newTestServer(t)

	answers := map[string]int{}
	for _, id := range []int{4, 7, 11, 13, 14, 25, 31, 33, 37, 38} {
		answers[strconv.Itoa(id)] = 3
	}
	resp := postJSON(t, server.URL+"/api/score", map[string]any{
		"instrument": "BEHAVIORAL",
		"answers":    answers,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var result struct {
		TotalScore         float64           `json:"totalScore"`
		TotalLevel         string            `json:"totalLevel"`
		Descriptions       map[string]string `json:"descriptions"`
		OverallDescription string            `json:"overallDescription"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	resp.Body.Close()

	if result.TotalScore != 3 || result.TotalLevel != "SEVERE" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Descriptions) != 6 || result.OverallDescription == "" {
		t.Fatalf("expected prose for all six factors, got %+v", result)
	}
}

func TestUsageEndpointRequiresAdminToken(t *testing.T) {
	server := newTestServer(t)

	resp, _ := http.Get(server.URL + "/api/usage")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Consume a card, then fetch the log with the admin token.
	resp = postJSON(t, server.URL+"/api/login", map[string]string{
		"cardNo": "DD0001", "password": "155204", "instrument": "BEHAVIORAL",
	})
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/login", map[string]string{
		"cardNo": "admin", "password": "gtdd001",
	})
	var adminLogin struct {
		Token string `json:"token"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&adminLogin)
	resp.Body.Close()
	if adminLogin.Token == "" {
		t.Fatal("expected an admin token")
	}

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/usage", nil)
	req.Header.Set("Authorization", "Bearer "+adminLogin.Token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get usage: %v", err)
	}
	var usage map[string]int64
	_ = json.NewDecoder(resp.Body).Decode(&usage)
	resp.Body.Close()
	if _, ok := usage["DD0001"]; !ok {
		t.Fatalf("expected DD0001 in usage log, got %v", usage)
	}
	if _, ok := usage["admin"]; ok {
		t.Fatal("admin must never appear in the usage log")
	}
}
