package http

import (
	"net/http"
	"strings"

	"fintrack/internal/core"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	var txs []core.Transaction
	switch {
	case q.Get("category") != "":
		txs = s.svcs.Transactions.ByCategory(ctx, q.Get("category"))
	case q.Get("type") != "":
		txs = s.svcs.Transactions.ByType(ctx, core.TransactionType(strings.ToLower(q.Get("type"))))
	case q.Get("from") != "" && q.Get("to") != "":
		from, err := core.ParseDate(q.Get("from"))
		if err != nil {
			writeError(w, core.ErrZeroDate)
			return
		}
		to, err := core.ParseDate(q.Get("to"))
		if err != nil {
			writeError(w, core.ErrZeroDate)
			return
		}
		txs = s.svcs.Transactions.ByDateRange(ctx, from, to)
	default:
		txs = s.svcs.Transactions.List(ctx)
	}

	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tx, err := s.svcs.Transactions.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var tx core.Transaction
	if err := decodeJSON(r, &tx); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.svcs.Transactions.Create(r.Context(), tx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var patch core.TransactionPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	updated, err := s.svcs.Transactions.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.svcs.Transactions.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
