package web

import (
	"net/http"
	"time"

	"neonbank/domain/entities"
	"neonbank/domain/utils"
)

type registerRequest struct {
	CharacterName string `json:"character_name"`
	Password      string `json:"password"`
}

type loginRequest struct {
	CharacterName string `json:"character_name"`
	Password      string `json:"password"`
}

type authResponse struct {
	AccessToken string          `json:"access_token"`
	Account     accountResponse `json:"account"`
}

type accountResponse struct {
	AccountNumber    string    `json:"account_number"`
	CharacterName    string    `json:"character_name"`
	IsAdmin          bool      `json:"is_admin"`
	Balance          int64     `json:"balance"`
	BalanceFormatted string    `json:"balance_formatted"`
	CreatedAt        time.Time `json:"created_at"`
}

func toAccountResponse(account *entities.Account) accountResponse {
	return accountResponse{
		AccountNumber:    account.AccountNumber,
		CharacterName:    account.CharacterName,
		IsAdmin:          account.IsAdmin,
		Balance:          account.Balance,
		BalanceFormatted: utils.FormatAmount(account.Balance),
		CreatedAt:        account.CreatedAt,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.accountService.Register(r.Context(), req.CharacterName, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := GenerateAccessToken(account.AccountNumber, account.CharacterName, account.IsAdmin, s.jwtSecret, s.tokenTTL)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		AccessToken: token,
		Account:     toAccountResponse(account),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.accountService.Authenticate(r.Context(), req.CharacterName, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := GenerateAccessToken(account.AccountNumber, account.CharacterName, account.IsAdmin, s.jwtSecret, s.tokenTTL)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: token,
		Account:     toAccountResponse(account),
	})
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	account, err := s.accountService.GetByAccountNumber(r.Context(), claims.Subject)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}
