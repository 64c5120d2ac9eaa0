package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hotelops/hotelops-backend-go/internal/handler/http/response"
	notificationService "github.com/hotelops/hotelops-backend-go/internal/service/notification"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationSvc *notificationService.Service
}

func NewNotificationHandler(notificationSvc *notificationService.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationSvc: notificationSvc}
}

// List implements NotificationHandler.
func (h *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	notifications, err := h.notificationSvc.List(r.Context(), actorID, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}

type markReadRequest struct {
	IDs []string `json:"ids"`
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkRead decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.notificationSvc.MarkRead(r.Context(), actorID, req.IDs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications marked as read", nil)
}
