package http

import (
	"net/http"

	"fintrack/internal/core"
)

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	var budgets []core.Budget
	switch {
	case q.Get("month") != "":
		month, err := core.ParseMonth(q.Get("month"))
		if err != nil {
			writeError(w, core.ErrZeroMonth)
			return
		}
		budgets = s.svcs.Budgets.ByMonth(ctx, month)
	case q.Get("category") != "":
		budgets = s.svcs.Budgets.ByCategory(ctx, q.Get("category"))
	default:
		budgets = s.svcs.Budgets.List(ctx)
	}

	writeJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := s.svcs.Budgets.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var b core.Budget
	if err := decodeJSON(r, &b); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.svcs.Budgets.Create(r.Context(), b)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var patch core.BudgetPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	updated, err := s.svcs.Budgets.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.svcs.Budgets.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBudgetStatuses returns every budget with its derived tracking
// metrics, recomputed on each call.
func (s *Server) handleBudgetStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svcs.Budgets.Statuses(r.Context()))
}
