package rest

import (
	"net/http"
	"time"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (that *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		writeAppError(w, that.logger, err)
		return
	}

	user, err := that.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeAppError(w, that.logger.With("method", "handleRegister"), err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (that *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		writeAppError(w, that.logger, err)
		return
	}

	login, err := that.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeAppError(w, that.logger.With("method", "handleLogin"), err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    login.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, login)
}

func (that *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})

	w.WriteHeader(http.StatusNoContent)
}
