package web

import (
	"net/http"
	"time"

	"neonbank/domain/entities"
	"neonbank/domain/utils"

	"github.com/go-chi/chi/v5"
)

type adjustBalanceRequest struct {
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"` // decimal credits, negative to debit
	Reason        string `json:"reason"`
}

type updateGameConfigRequest struct {
	Enabled          *bool    `json:"enabled,omitempty"`
	PayoutPercentage *float64 `json:"payout_percentage,omitempty"`
}

type gameConfigResponse struct {
	GameName         string    `json:"game_name"`
	Enabled          bool      `json:"enabled"`
	PayoutPercentage float64   `json:"payout_percentage"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type auditLogResponse struct {
	ID              int64     `json:"id"`
	AdminAccountID  int64     `json:"admin_account_id"`
	Action          string    `json:"action"`
	TargetAccountID *int64    `json:"target_account_id,omitempty"`
	Details         string    `json:"details"`
	CreatedAt       time.Time `json:"created_at"`
}

// adminAccount resolves the acting admin from the request claims
func (s *Server) adminAccount(r *http.Request) (*entities.Account, error) {
	claims := claimsFromContext(r.Context())
	return s.accountService.GetByAccountNumber(r.Context(), claims.Subject)
}

func (s *Server) handleAdjustBalance(w http.ResponseWriter, r *http.Request) {
	admin, err := s.adminAccount(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var req adjustBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	txn, err := s.ledger.AdjustBalance(r.Context(), admin, req.AccountNumber, amount, req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(txn))
}

func (s *Server) handleUpdateGameConfig(w http.ResponseWriter, r *http.Request) {
	admin, err := s.adminAccount(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	gameName := chi.URLParam(r, "gameName")

	var req updateGameConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	config, err := s.admin.UpdateGameConfig(r.Context(), admin, gameName, req.Enabled, req.PayoutPercentage)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameConfigResponse{
		GameName:         config.GameName,
		Enabled:          config.Enabled,
		PayoutPercentage: config.PayoutPercentage,
		UpdatedAt:        config.UpdatedAt,
	})
}

func (s *Server) handleListGameConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.admin.ListGameConfigs(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]gameConfigResponse, 0, len(configs))
	for _, config := range configs {
		out = append(out, gameConfigResponse{
			GameName:         config.GameName,
			Enabled:          config.Enabled,
			PayoutPercentage: config.PayoutPercentage,
			UpdatedAt:        config.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r, 50)

	entries, err := s.admin.ListAuditLogs(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]auditLogResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, auditLogResponse{
			ID:              entry.ID,
			AdminAccountID:  entry.AdminAccountID,
			Action:          entry.Action,
			TargetAccountID: entry.TargetAccountID,
			Details:         entry.Details,
			CreatedAt:       entry.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListAllTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r, 50)

	txns, err := s.admin.ListTransactions(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(txns))
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	account, err := s.accountService.GetByAccountNumber(r.Context(), accountNumber)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}
