package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhive/backend/api/transport"
	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/pkg/httpcontext"
	"github.com/taskhive/backend/repository"
	taskUC "github.com/taskhive/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create task
// @Tags tasks
// @Router /api/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	task, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.FromTask(*created))
}

// @Summary List all tasks
// @Tags tasks
// @Router /api/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.FromTasks(tasks))
}

// @Summary Get task by id
// @Tags tasks
// @Router /api/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	id := pathValue(ctx, "id")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.GetTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.FromTask(*task))
}

// @Summary Update task
// @Tags tasks
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	id := pathValue(ctx, "id")

	task, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTask(stdCtx, id, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.FromTask(*updated))
}

// @Summary Delete task
// @Tags tasks
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id := pathValue(ctx, "id")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Search tasks
// @Tags tasks
// @Router /api/tasks/search [get]
func (h *TaskHandler) SearchTasks(ctx *fasthttp.RequestCtx) {
	criteria, ok := h.parseTaskCriteria(ctx)
	if !ok {
		return
	}
	page := parsePageRequest(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.SearchTasks(stdCtx, criteria, page)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.TaskPage(result))
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx) (*domain.Task, bool) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return nil, false
	}

	task, err := req.ToDomain()
	if err != nil {
		h.respondError(ctx, err)
		return nil, false
	}
	return task, true
}

func (h *TaskHandler) parseTaskCriteria(ctx *fasthttp.RequestCtx) (repository.TaskCriteria, bool) {
	criteria := repository.TaskCriteria{
		ProjectID: queryParam(ctx, "projectId"),
		Search:    queryParam(ctx, "search"),
		Name:      queryParam(ctx, "name"),
		ID:        queryParam(ctx, "id"),
	}

	if raw := strings.TrimSpace(queryParam(ctx, "status")); raw != "" {
		status, ok := domain.ParseStatus(raw)
		if !ok {
			h.respondError(ctx, domain.NewValidationError(domain.FieldError{
				Field: "status", Reason: "unknown status value",
			}))
			return repository.TaskCriteria{}, false
		}
		criteria.Status = status
	}

	if raw := strings.TrimSpace(queryParam(ctx, "priority")); raw != "" {
		priority, ok := domain.ParsePriority(raw)
		if !ok {
			h.respondError(ctx, domain.NewValidationError(domain.FieldError{
				Field: "priority", Reason: "unknown priority value",
			}))
			return repository.TaskCriteria{}, false
		}
		criteria.Priority = priority
	}

	from, err := parseDateParam(ctx, "dueDateFrom")
	if err != nil {
		h.respondError(ctx, err)
		return repository.TaskCriteria{}, false
	}
	criteria.DueDateFrom = from

	to, err := parseDateParam(ctx, "dueDateTo")
	if err != nil {
		h.respondError(ctx, err)
		return repository.TaskCriteria{}, false
	}
	criteria.DueDateTo = to

	return criteria, true
}
