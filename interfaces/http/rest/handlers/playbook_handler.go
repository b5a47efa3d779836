// Package handlers implements the HTTP handlers of the playbook API.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"playbook-backend/application/commands"
	"playbook-backend/application/commands/bus"
	"playbook-backend/application/queries"
	querybus "playbook-backend/application/queries/bus"
	"playbook-backend/domain/playbook"
	"playbook-backend/pkg/auth"
	"playbook-backend/pkg/common"
	"playbook-backend/pkg/utils"
)

const maxBodyBytes = 1 << 20 // 1 MiB request body cap

// PlaybookHandler handles playbook-related HTTP requests
type PlaybookHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewPlaybookHandler creates a new playbook handler
func NewPlaybookHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *PlaybookHandler {
	return &PlaybookHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// ValidateGraphRequest represents the request body for graph validation
type ValidateGraphRequest struct {
	Graph playbook.Graph `json:"graph"`
}

// CreatePlaybookRequest represents the request body for creating a playbook
type CreatePlaybookRequest struct {
	Name  string         `json:"name" validate:"required,min=1,max=200"`
	Graph playbook.Graph `json:"graph"`
}

// UpdatePlaybookGraphRequest represents the request body for replacing a graph
type UpdatePlaybookGraphRequest struct {
	Graph playbook.Graph `json:"graph"`
}

// CreatePlaybookResponse represents the response for creating a playbook
type CreatePlaybookResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ValidateGraph handles POST /playbooks/validate. It always answers
// 200: an invalid graph is a successful validation whose report says
// Valid=false.
func (h *PlaybookHandler) ValidateGraph(w http.ResponseWriter, r *http.Request) {
	var req ValidateGraphRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ValidateGraphQuery{Graph: req.Graph})
	if err != nil {
		h.logger.Error("Validation query failed", zap.Error(err))
		common.RespondDomainError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// CreatePlaybook handles POST /playbooks
func (h *PlaybookHandler) CreatePlaybook(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaybookRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	// The id is minted here so the response can carry it; the command
	// bus only reports success or failure.
	playbookID := uuid.New().String()

	cmd := commands.CreatePlaybookCommand{
		PlaybookID: playbookID,
		UserID:     user.UserID,
		Name:       req.Name,
		Graph:      req.Graph,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondDomainError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, CreatePlaybookResponse{
		ID:      playbookID,
		Message: "Playbook created",
	})
}

// GetPlaybook handles GET /playbooks/{playbookID}
func (h *PlaybookHandler) GetPlaybook(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	playbookID := chi.URLParam(r, "playbookID")

	view, err := h.queryBus.Ask(r.Context(), queries.GetPlaybookQuery{
		PlaybookID: playbookID,
		UserID:     user.UserID,
	})
	if err != nil {
		common.RespondDomainError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// ListPlaybooks handles GET /playbooks
func (h *PlaybookHandler) ListPlaybooks(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	summaries, err := h.queryBus.Ask(r.Context(), queries.ListPlaybooksQuery{UserID: user.UserID})
	if err != nil {
		common.RespondDomainError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, summaries)
}

// UpdatePlaybookGraph handles PUT /playbooks/{playbookID}
func (h *PlaybookHandler) UpdatePlaybookGraph(w http.ResponseWriter, r *http.Request) {
	var req UpdatePlaybookGraphRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	cmd := commands.UpdatePlaybookGraphCommand{
		PlaybookID: chi.URLParam(r, "playbookID"),
		UserID:     user.UserID,
		Graph:      req.Graph,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondDomainError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Playbook updated"})
}

// DeletePlaybook handles DELETE /playbooks/{playbookID}
func (h *PlaybookHandler) DeletePlaybook(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	cmd := commands.DeletePlaybookCommand{
		PlaybookID: chi.URLParam(r, "playbookID"),
		UserID:     user.UserID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondDomainError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Playbook deleted"})
}
