package rest

import "net/http"

func (that *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := that.users.History(r.Context(), PlayerFrom(r))
	if err != nil {
		writeAppError(w, that.logger.With("method", "handleHistory"), err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}
