package web

import (
	"net/http"
	"strconv"
	"time"

	"neonbank/domain/entities"
	"neonbank/domain/utils"
)

type transferRequest struct {
	ToAccountNumber string `json:"to_account_number"`
	Amount          string `json:"amount"` // decimal credits, e.g. "12.50"
	Memo            string `json:"memo"`
}

type transactionResponse struct {
	ID                int64     `json:"id"`
	FromAccountNumber string    `json:"from_account_number"`
	ToAccountNumber   string    `json:"to_account_number"`
	Amount            int64     `json:"amount"`
	AmountFormatted   string    `json:"amount_formatted"`
	Memo              string    `json:"memo"`
	Category          string    `json:"category"`
	CreatedAt         time.Time `json:"created_at"`
}

type transferResponse struct {
	Transaction transactionResponse `json:"transaction"`
	Balance     int64               `json:"balance"`
}

func toTransactionResponse(txn *entities.Transaction) transactionResponse {
	return transactionResponse{
		ID:                txn.ID,
		FromAccountNumber: txn.FromAccountNumber,
		ToAccountNumber:   txn.ToAccountNumber,
		Amount:            txn.Amount,
		AmountFormatted:   utils.FormatAmount(txn.Amount),
		Memo:              txn.Memo,
		Category:          string(txn.Category),
		CreatedAt:         txn.CreatedAt,
	}
}

func toTransactionResponses(txns []*entities.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, toTransactionResponse(txn))
	}
	return out
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	result, err := s.ledger.Transfer(r.Context(), claims.Subject, req.ToAccountNumber, amount, req.Memo, entities.CategoryTransfer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, transferResponse{
		Transaction: toTransactionResponse(result.Transaction),
		Balance:     result.FromBalance,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	limit, offset := paginationParams(r, 50)

	txns, err := s.ledger.History(r.Context(), claims.Subject, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(txns))
}

func (s *Server) handleSearchTransactions(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	limit, _ := paginationParams(r, 50)

	txns, err := s.ledger.SearchTransactions(r.Context(), claims.Subject, query, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(txns))
}

// paginationParams reads limit/offset query parameters, clamping the
// limit to [1,200].
func paginationParams(r *http.Request, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 200 {
		limit = 200
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
