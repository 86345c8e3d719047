package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"pulsovital-golang/internal/model/request"
	"pulsovital-golang/internal/model/response"
	"pulsovital-golang/pkg/util"
)

type ComputeService interface {
	Compute(ctx context.Context, r request.ComputeRequest) (response.ComputeResponse, error)
}

type ComputeHandler struct {
	service ComputeService
}

func NewComputeHandler(service ComputeService) *ComputeHandler {
	return &ComputeHandler{
		service: service,
	}
}

func (ch *ComputeHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req request.ComputeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logMethod(err.Error())
		response.WriteJSON(w, http.StatusBadRequest, response.Error("Invalid JSON format"))
		return
	}

	if err := req.Validate(); err != nil {
		logMethod(err.Error())
		response.WriteJSON(w, http.StatusBadRequest, response.Error(err.Error()))
		return
	}

	result, err := ch.service.Compute(r.Context(), req)
	if err != nil {
		logMethod(err.Error())
		response.WriteJSON(w, http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}

func logMethod(message string) {
	log.Printf("[%s] %s", util.CurrentMethod(2), message)
}
