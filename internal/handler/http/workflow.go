package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
	"github.com/hotelops/hotelops-backend-go/internal/handler/http/response"
)

type WorkflowHandler interface {
	Transitions(w http.ResponseWriter, r *http.Request)
}

type WorkflowHandlerImpl struct{}

func NewWorkflowHandler() WorkflowHandler {
	return &WorkflowHandlerImpl{}
}

type transitionRow struct {
	Status   workflow.Status   `json:"status"`
	Next     []workflow.Status `json:"next"`
	Terminal bool              `json:"terminal"`
}

// Transitions exposes an entity kind's state machine, mainly so UIs can
// render which moves are legal without hardcoding the tables.
func (h *WorkflowHandlerImpl) Transitions(w http.ResponseWriter, r *http.Request) {
	entityType := workflow.EntityType(chi.URLParam(r, "entityType"))
	if !entityType.IsValid() {
		response.NotFound(w, "Unknown entity type")
		return
	}

	statuses := workflow.Statuses(entityType)
	rows := make([]transitionRow, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, transitionRow{
			Status:   s,
			Next:     workflow.NextStatuses(entityType, s),
			Terminal: workflow.IsTerminal(entityType, s),
		})
	}

	response.Success(w, rows)
}
