package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorBody is the wire format for every failure: a single detail string.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func Error(detail string) ErrorBody {
	return ErrorBody{Detail: detail}
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("JSON encoding error", err)

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
