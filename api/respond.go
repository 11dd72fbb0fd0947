package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// msgResponse is the wire shape for every handler-level message and error.
type msgResponse struct {
	Msg string `json:"msg"`
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteMsg(w http.ResponseWriter, status int, msg string) {
	r.WriteJSON(w, status, msgResponse{Msg: msg})
}

// WriteError maps an error onto the response. Expected errors carry their own
// status code; anything else is logged and surfaces as a generic server error.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteMsg(w, http.StatusInternalServerError, "Server error")
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Err(apiErr.Cause).Msg(apiErr.Error())
	}
	r.WriteMsg(w, apiErr.StatusCode, apiErr.Error())
}
