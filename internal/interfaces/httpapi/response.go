package httpapi

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fantasy-cricket"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

// rosterReasons names each roster rejection for clients; the first match wins.
var rosterReasons = []struct {
	err    error
	reason string
}{
	{fantasy.ErrRosterFull, "rosterFull"},
	{fantasy.ErrPositionCapReached, "positionCapReached"},
	{fantasy.ErrSubstituteCapReached, "substituteCapReached"},
	{fantasy.ErrAlreadyOwned, "alreadyOwned"},
	{fantasy.ErrInsufficientBudget, "insufficientBudget"},
	{fantasy.ErrPositionMismatch, "positionMismatch"},
	{fantasy.ErrSubstituteCaptain, "substituteCaptain"},
	{fantasy.ErrNotOwned, "notOwned"},
	{fantasy.ErrNotMainRoster, "notMainRoster"},
	{fantasy.ErrNotSubstitute, "notSubstitute"},
	{fantasy.ErrUnknownPosition, "unknownPosition"},
	{fantasy.ErrUnknownMutation, "unknownMutation"},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_, _ = buf.WriteString(`{"apiVersion":"2.0","error":{"code":500,"message":"encode response","status":"INTERNAL"}}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	message := err.Error()
	if mapped.HTTPStatus == http.StatusInternalServerError {
		message = internalMessage
	}
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, message))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope(internalError, internalMessage))
}

func errorEnvelope(mapped mappedError, message string) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors:  []googleErrorItem{{Domain: errorDomain, Reason: mapped.Reason, Message: message}},
		},
	}
}

const internalMessage = "internal server error"

var internalError = mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

// sentinelErrors maps usecase outcomes to transport errors, checked in order.
var sentinelErrors = []struct {
	err    error
	mapped mappedError
}{
	{usecase.ErrInvalidInput, mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{http.StatusNotFound, "notFound", "NOT_FOUND"}},
	{usecase.ErrConflict, mappedError{http.StatusConflict, "conflict", "ALREADY_EXISTS"}},
	{usecase.ErrLocked, mappedError{http.StatusLocked, "roundLocked", "FAILED_PRECONDITION"}},
	{usecase.ErrUnauthorized, mappedError{http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"}},
	{usecase.ErrForbidden, mappedError{http.StatusForbidden, "forbidden", "PERMISSION_DENIED"}},
	{usecase.ErrDependencyUnavailable, mappedError{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"}},
}

func mapError(err error) mappedError {
	if fantasy.IsRejection(err) {
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: rejectionReason(err), Status: "INVALID_ARGUMENT"}
	}
	for _, s := range sentinelErrors {
		if errors.Is(err, s.err) {
			return s.mapped
		}
	}
	return internalError
}

func rejectionReason(err error) string {
	for _, item := range rosterReasons {
		if errors.Is(err, item.err) {
			return item.reason
		}
	}
	return "invalidRoster"
}
