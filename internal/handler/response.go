package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ideahub/backend/internal/metrics"
	"github.com/ideahub/backend/internal/validation"
)

const (
	statusOK    = "ok"
	statusError = "error"

	msgInvalidBody    = "invalid request body"
	msgInternalError  = "Something went wrong. Please try again later."
	msgSubmitFailed   = "We could not save your submission. Please try again later."
	msgListFailed     = "We could not load the project ideas. Please try again later."
	msgRateLimited    = "Too many requests. Please wait a moment and try again."
	msgContactSuccess = "Your message has been sent successfully."
	msgProjectSuccess = "Your project idea has been submitted successfully."

	maxBodyBytes = 64 << 10
)

// messageResponse is {status, msg}: submission success and every failure
// that is not a validation failure.
type messageResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// dataResponse is {status:"ok", data}.
type dataResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// validationResponse is {status:"error", errors:[...]}, always with HTTP 400.
type validationResponse struct {
	Status string            `json:"status"`
	Errors validation.Errors `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Status: statusOK, Msg: msg})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Status: statusError, Msg: msg})
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, dataResponse{Status: statusOK, Data: data})
}

// decodeValues reads exactly one flat JSON object into form values. Strings are kept
// as-is, numbers keep their literal text, null means absent. Any other JSON
// type is rejected.
func decodeValues(w http.ResponseWriter, r *http.Request) (validation.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	values := make(validation.Values, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
		case string:
			values[k] = t
		case json.Number:
			values[k] = t.String()
		default:
			return nil, fmt.Errorf("field %q: unsupported JSON type %T", k, v)
		}
	}
	return values, nil
}

// writeSubmitError maps a service error to the response contract:
// validation.Errors become a 400 with the full list, anything else is a 500
// with a generic message.
func writeSubmitError(w http.ResponseWriter, r *http.Request, form string, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		metrics.RecordSubmission(form, metrics.OutcomeInvalid)
		for _, fe := range verrs {
			metrics.RecordValidationFailure(form, fe.Field)
		}
		slog.DebugContext(r.Context(), "submission rejected", "form", form, "fields", verrs.Fields())
		writeJSON(w, http.StatusBadRequest, validationResponse{Status: statusError, Errors: verrs})
		return
	}
	metrics.RecordSubmission(form, metrics.OutcomeFailed)
	slog.ErrorContext(r.Context(), "submission failed", "form", form, "error", err)
	writeFailure(w, http.StatusInternalServerError, msgSubmitFailed)
}
