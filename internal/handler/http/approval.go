package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/leave-calendar-go/internal/handler/http/response"
	"github.com/cmlabs-hris/leave-calendar-go/internal/service/approval"
)

type ApprovalHandler interface {
	ListApprovers(w http.ResponseWriter, r *http.Request)
	BuildChain(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandlerImpl struct {
	approvalService *approval.Service
}

func NewApprovalHandler(approvalService *approval.Service) ApprovalHandler {
	return &ApprovalHandlerImpl{approvalService: approvalService}
}

// ListApprovers implements ApprovalHandler.
func (h *ApprovalHandlerImpl) ListApprovers(w http.ResponseWriter, r *http.Request) {
	approvers, err := h.approvalService.ListApprovers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, approvers)
}

// BuildChain implements ApprovalHandler. The ids arrive in the order the
// user picked them; replaying them through the chain deduplicates repeats
// while keeping first positions.
func (h *ApprovalHandlerImpl) BuildChain(w http.ResponseWriter, r *http.Request) {
	var req leave.ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BuildChain decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	mode := approval.ModeParallel
	if req.Mode == string(approval.ModeSequential) {
		mode = approval.ModeSequential
	}

	chain := approval.NewChain()
	for _, id := range req.ApproverIDs {
		chain.Add(id)
	}

	result, err := h.approvalService.BuildResult(r.Context(), chain, mode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
