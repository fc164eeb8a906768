package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"healthconnect/internal/converter"
	"healthconnect/internal/domain/policy"
	"healthconnect/internal/usecase"
	"healthconnect/pkg/response"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{alertUsecase: alertUsecase}
}

func (h *AlertHandler) GetMyAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alertUsecase.GetMyAlerts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get alerts")
		return
	}

	response.Success(w, http.StatusOK, "Alerts retrieved successfully", alerts)
}

func (h *AlertHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.alertUsecase.GetUnreadCount(r.Context())
	if err != nil {
		if err == policy.ErrPermissionDenied {
			response.Forbidden(w, "")
			return
		}
		response.InternalServerError(w, "Failed to get unread count")
		return
	}

	response.Success(w, http.StatusOK, "Unread count retrieved successfully", count)
}

func (h *AlertHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	result, err := h.alertUsecase.MarkAllRead(r.Context())
	if err != nil {
		if err == policy.ErrPermissionDenied {
			response.Forbidden(w, "")
			return
		}
		response.InternalServerError(w, "Failed to mark alerts read")
		return
	}

	response.Success(w, http.StatusOK, "Alerts marked as read", result)
}

// StreamAlerts serves the live alert feed as server-sent events. The first
// event is a snapshot of the current list; each following event is one new
// alert, delivered as it arrives. The connection stays open until the
// client disconnects.
func (h *AlertHandler) StreamAlerts(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	feed, live, stop, err := h.alertUsecase.Stream(r.Context())
	if err != nil {
		if err == policy.ErrPermissionDenied {
			response.Forbidden(w, "Only patients have an alert feed")
			return
		}
		response.InternalServerError(w, "Failed to open alert stream")
		return
	}
	defer stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	snapshot, err := json.Marshal(converter.AlertsToResponses(feed.Snapshot()))
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", snapshot)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case alert, open := <-live:
			if !open {
				return
			}
			// Duplicate of something already in the snapshot
			if !feed.Push(alert) {
				continue
			}
			payload, err := json.Marshal(converter.AlertToResponse(&alert))
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: alert\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
