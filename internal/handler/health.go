package handler

import (
	"net/http"
	"pulsovital-golang/internal/model/response"
)

func Health(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
