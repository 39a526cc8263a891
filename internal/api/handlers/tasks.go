package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/deal-desk/internal/engine"
	"github.com/donaldgifford/deal-desk/internal/store"
	"github.com/donaldgifford/deal-desk/pkg/focus"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// TaskHandler handles broker to-do items.
type TaskHandler struct {
	store    store.Store
	engine   *engine.Engine
	validate *Validator
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(s store.Store, eng *engine.Engine, v *Validator) *TaskHandler {
	return &TaskHandler{store: s, engine: eng, validate: v}
}

// List handles GET /api/v1/tasks.
//
// @Summary List tasks
// @Description Returns open tasks by due date. With all=true, completed tasks follow the open ones.
// @Tags tasks
// @Produce json
// @Param all query string false "Include completed tasks" Enums(true, false)
// @Success 200 {array} domain.Task
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	includeCompleted := c.QueryParam("all") == "true"

	tasks, err := h.store.ListTasks(c.Request().Context(), includeCompleted)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "listing tasks: "+err.Error())
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}

	return c.JSON(http.StatusOK, focus.SortTasks(tasks))
}

// Create handles POST /api/v1/tasks. A missing due date defaults to now.
//
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body domain.Task true "Task to create"
// @Success 201 {object} domain.Task
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var t domain.Task
	if err := c.Bind(&t); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	t.Title = strings.TrimSpace(t.Title)
	if err := h.validate.Validate(&t); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	t.ID = ""
	t.Completed = false
	if t.DueDate.IsZero() {
		t.DueDate = h.engine.Now()
	}

	if err := h.store.CreateTask(c.Request().Context(), &t); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "creating task: "+err.Error())
	}

	return c.JSON(http.StatusCreated, t)
}

// Complete handles POST /api/v1/tasks/:id/complete.
//
// @Summary Complete a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task UUID"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tasks/{id}/complete [post]
func (h *TaskHandler) Complete(c echo.Context) error {
	if err := h.store.CompleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return storeError(c, err, "task not found", "completing task")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "completed"})
}
