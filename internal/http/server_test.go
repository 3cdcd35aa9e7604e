package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/services"
	"fintrack/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cats := []core.Category{
		{ID: 1, Name: "Food & Dining", Type: core.Expense},
		{ID: 2, Name: "Salary", Type: core.Income},
	}
	transactions := store.New[core.Transaction]("transaction", nil, store.Nop())
	budgets := store.New[core.Budget]("budget", nil, store.Nop())
	goals := store.New[core.SavingsGoal]("savings goal", nil, store.Nop())
	categories := store.New("category", cats, store.Nop())

	srv := NewServer(":0", Services{
		Transactions: services.NewTransactionService(transactions, budgets, categories, nil),
		Budgets:      services.NewBudgetService(budgets, categories, transactions, nil),
		Goals:        services.NewGoalService(goals, nil),
		Categories:   services.NewCategoryService(categories, nil),
		Dashboard:    services.NewDashboardService(transactions, budgets, goals, 5, 6),
	})
	t.Cleanup(func() { srv.rateLimiter.stop() })
	return srv
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/healthz", "/readyz"} {
		rec := do(t, srv, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestCreateTransaction(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/transactions",
		`{"type":"expense","amount":45.50,"category":"Food & Dining","description":"groceries","date":"2024-03-05"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got["Id"] != float64(1) {
		t.Fatalf("expected Id 1, got %v", got["Id"])
	}
	if got["amount"] != 45.50 {
		t.Fatalf("expected bare numeric amount 45.50, got %v", got["amount"])
	}
	if got["date"] != "2024-03-05" {
		t.Fatalf("expected date 2024-03-05, got %v", got["date"])
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing description", `{"type":"expense","amount":10,"category":"Food & Dining","date":"2024-03-05"}`, http.StatusBadRequest},
		{"negative amount", `{"type":"expense","amount":-10,"category":"Food & Dining","description":"x","date":"2024-03-05"}`, http.StatusBadRequest},
		{"unknown field", `{"type":"expense","amount":10,"category":"Food & Dining","description":"x","date":"2024-03-05","bogus":true}`, http.StatusBadRequest},
		{"malformed json", `{`, http.StatusBadRequest},
		{"unknown category", `{"type":"expense","amount":10,"category":"Yachts","description":"x","date":"2024-03-05"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/transactions", tc.body)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetTransactionNotFound(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/transactions/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
}

func TestGetTransactionInvalidID(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/transactions/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateTransactionPartial(t *testing.T) {
	srv := newTestServer(t)

	if rec := do(t, srv, http.MethodPost, "/api/transactions",
		`{"type":"expense","amount":10,"category":"Food & Dining","description":"lunch","date":"2024-03-05"}`); rec.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d", rec.Code)
	}

	rec := do(t, srv, http.MethodPut, "/api/transactions/1", `{"amount":25}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got core.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !got.Amount.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("amount not updated: %v", got.Amount)
	}
	if got.Description != "lunch" {
		t.Fatal("omitted field did not persist through the patch")
	}
}

func TestDeleteTransaction(t *testing.T) {
	srv := newTestServer(t)

	if rec := do(t, srv, http.MethodPost, "/api/transactions",
		`{"type":"expense","amount":10,"category":"Food & Dining","description":"lunch","date":"2024-03-05"}`); rec.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d", rec.Code)
	}

	if rec := do(t, srv, http.MethodDelete, "/api/transactions/1", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec := do(t, srv, http.MethodDelete, "/api/transactions/1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestBudgetDuplicateScope(t *testing.T) {
	srv := newTestServer(t)
	body := `{"category":"Food & Dining","amount":200,"month":"2024-03"}`

	if rec := do(t, srv, http.MethodPost, "/api/budgets", body); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := do(t, srv, http.MethodPost, "/api/budgets", body); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate, got %d", rec.Code)
	}
}

func TestBudgetInvalidAmountIs422(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/budgets",
		`{"category":"Food & Dining","amount":0,"month":"2024-03"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGoalContributionFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/goals",
		`{"name":"Vacation","targetAmount":1000,"deadline":"2025-06-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, srv, http.MethodPost, "/api/goals/1/contributions", `{"amount":250}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got core.SavingsGoal
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !got.CurrentAmount.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected 250, got %v", got.CurrentAmount)
	}

	rec = do(t, srv, http.MethodPost, "/api/goals/1/contributions", `{"amount":0}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-positive contribution, got %d", rec.Code)
	}
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var ov core.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &ov); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !ov.Income.IsZero() || !ov.Expense.IsZero() {
		t.Fatalf("empty ledger must summarize to zero: %+v", ov)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/transactions", "")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("missing nosniff header, got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("missing frame options header, got %q", got)
	}
}

func TestContentTypeJSON(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/transactions", "")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
}
