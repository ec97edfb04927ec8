package web

import (
	"net/http"

	"neonbank/domain/utils"
)

type spinRequest struct {
	Bet string `json:"bet"` // decimal credits; per line for the multiline game
}

func (s *Server) handleGlitchGridSpin(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req spinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	bet, err := utils.ParseAmount(req.Bet)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bet")
		return
	}

	result, err := s.casino.SpinGlitchGrid(r.Context(), claims.Subject, bet)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStarlightSpin(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req spinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	betPerLine, err := utils.ParseAmount(req.Bet)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bet")
		return
	}

	result, err := s.casino.SpinStarlight(r.Context(), claims.Subject, betPerLine)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	configs, err := s.admin.ListGameConfigs(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	type gameResponse struct {
		GameName string `json:"game_name"`
		Enabled  bool   `json:"enabled"`
	}
	games := make([]gameResponse, 0, len(configs))
	for _, config := range configs {
		games = append(games, gameResponse{GameName: config.GameName, Enabled: config.Enabled})
	}
	writeJSON(w, http.StatusOK, games)
}
