package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhive/backend/api/transport"
	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/pkg/httpcontext"
	"github.com/taskhive/backend/repository"
	projectUC "github.com/taskhive/backend/usecase/project"
)

type ProjectHandler struct {
	baseHandler
	uc *projectUC.UseCase
}

func NewProjectHandler(uc *projectUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create project
// @Tags projects
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(ctx *fasthttp.RequestCtx) {
	project, ok := h.parseProject(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateProject(stdCtx, project)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.FromProject(*created))
}

// @Summary List all projects
// @Tags projects
// @Router /api/projects [get]
func (h *ProjectHandler) GetProjects(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	projects, err := h.uc.ListProjects(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.FromProjects(projects))
}

// @Summary Get project by id
// @Tags projects
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(ctx *fasthttp.RequestCtx) {
	id := pathValue(ctx, "id")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	project, err := h.uc.GetProject(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.FromProject(*project))
}

// @Summary Update project
// @Tags projects
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(ctx *fasthttp.RequestCtx) {
	id := pathValue(ctx, "id")

	project, ok := h.parseProject(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateProject(stdCtx, id, project)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.FromProject(*updated))
}

// @Summary Delete project
// @Tags projects
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(ctx *fasthttp.RequestCtx) {
	id := pathValue(ctx, "id")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteProject(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Search projects
// @Tags projects
// @Router /api/projects/search [get]
func (h *ProjectHandler) SearchProjects(ctx *fasthttp.RequestCtx) {
	criteria := repository.ProjectCriteria{
		ID:          queryParam(ctx, "id"),
		Name:        queryParam(ctx, "name"),
		Description: queryParam(ctx, "description"),
	}
	page := parsePageRequest(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.SearchProjects(stdCtx, criteria, page)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.ProjectPage(result))
}

// @Summary Assign task to project
// @Tags projects
// @Router /api/projects/{projectId}/tasks/{taskId} [post]
func (h *ProjectHandler) AssignTask(ctx *fasthttp.RequestCtx) {
	projectID := pathValue(ctx, "projectId")
	taskID := pathValue(ctx, "taskId")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	project, err := h.uc.AssignTask(stdCtx, projectID, taskID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.FromProject(*project))
}

// @Summary Unassign task from project
// @Tags projects
// @Router /api/projects/{projectId}/tasks/{taskId} [delete]
func (h *ProjectHandler) UnassignTask(ctx *fasthttp.RequestCtx) {
	projectID := pathValue(ctx, "projectId")
	taskID := pathValue(ctx, "taskId")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	project, err := h.uc.UnassignTask(stdCtx, projectID, taskID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.FromProject(*project))
}

func (h *ProjectHandler) parseProject(ctx *fasthttp.RequestCtx) (*domain.Project, bool) {
	var req transport.ProjectRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return nil, false
	}
	return req.ToDomain(), true
}
