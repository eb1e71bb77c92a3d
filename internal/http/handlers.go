package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bilancio/internal/core"
	"bilancio/internal/kv"
	"bilancio/internal/ledger"
)

const persistWarning = "stored in memory but not persisted; the change may be lost on restart"

type createTransactionRequest struct {
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Type        string      `json:"type"`
}

type transactionResponse struct {
	Transaction ledger.Record `json:"transaction"`
	Warning     string        `json:"warning,omitempty"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	case http.MethodDelete:
		s.clearTransactions(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs := s.store.Transactions()
	records := make([]ledger.Record, 0, len(txs))
	for _, t := range txs {
		records = append(records, sanitizeRecord(ledger.RecordFrom(t)))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": records,
		"count":        len(records),
	})
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount.String())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	tx, err := s.store.Add(r.Context(),
		sanitizeInput(req.Description),
		core.Money{Cents: cents},
		core.Category(strings.ToLower(strings.TrimSpace(req.Category))),
		core.Kind(strings.ToLower(strings.TrimSpace(req.Type))),
	)
	if err != nil && !errors.Is(err, kv.ErrWrite) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := transactionResponse{Transaction: sanitizeRecord(ledger.RecordFrom(tx))}
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction persisted in memory only", "error", err, "transaction_id", tx.ID)
		resp.Warning = persistWarning
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) clearTransactions(w http.ResponseWriter, r *http.Request) {
	count := s.store.Len()
	err := s.store.Clear(r.Context())

	resp := map[string]any{"cleared": count}
	if err != nil {
		slog.ErrorContext(r.Context(), "Clear persisted in memory only", "error", err)
		resp["warning"] = persistWarning
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}

	removed, err := s.store.Remove(r.Context(), id)
	if !removed {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}

	resp := map[string]any{"deleted": id}
	if err != nil {
		slog.ErrorContext(r.Context(), "Delete persisted in memory only", "error", err, "transaction_id", id)
		resp["warning"] = persistWarning
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, s.store.Summary())
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": s.store.CategoryTotals()})
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": s.store.Alerts(s.budgets.Table())})
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, s.store.Advice(s.budgets.Table()))
}

type budgetsRequest struct {
	Budgets core.BudgetTable `json:"budgets"`
}

func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"budgets": s.budgets.Table()})
	case http.MethodPut:
		var req budgetsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Budgets) == 0 {
			writeError(w, http.StatusUnprocessableEntity, "budgets cannot be empty")
			return
		}

		err := s.budgets.Replace(r.Context(), req.Budgets)
		if err != nil && !errors.Is(err, kv.ErrWrite) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		resp := map[string]any{"budgets": s.budgets.Table()}
		if err != nil {
			slog.ErrorContext(r.Context(), "Budgets persisted in memory only", "error", err)
			resp["warning"] = persistWarning
		}
		writeJSON(w, http.StatusOK, resp)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
