package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// handleDashboard returns the current-month overview. Everything in it is
// recomputed from the stores on each request.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svcs.Dashboard.Overview(r.Context(), time.Now()))
}

// handleMonthlyReport returns the income/expense trend series for the most
// recent N months, oldest first.
func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	months := 0
	if v := strings.TrimSpace(r.URL.Query().Get("months")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			months = m
		}
	}
	writeJSON(w, http.StatusOK, s.svcs.Dashboard.MonthlyReport(r.Context(), months, time.Now()))
}

// handleCategoryReport returns the expense breakdown for one calendar month.
func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)
	writeJSON(w, http.StatusOK, s.svcs.Dashboard.CategoryReport(r.Context(), year, month))
}
