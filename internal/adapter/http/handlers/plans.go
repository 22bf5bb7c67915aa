package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timed/internal/adapter/http/dto"
	"timed/internal/adapter/http/mapper"
	"timed/internal/adapter/http/middleware"
	"timed/internal/adapter/http/validation"
	"timed/internal/core/domain"
	"timed/internal/core/ports"
	"timed/pkg/apierrors"
)

type PlanHandler struct {
	planService ports.PlanService
}

func NewPlanHandler(planService ports.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPlanPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreatePlanInput(userID, req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPlanPayload, lang),
		)
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePlan) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgDuplicatePlan, lang),
			)
			return
		}

		zap.L().Error("failed to create plan", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreatePlan, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToPlanItem(plan))
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	plans, err := h.planService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list plans", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListPlans, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanItems(plans))
}

func (h *PlanHandler) GetPlanByDate(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDate, lang),
		)
		return
	}

	plan, err := h.planService.GetPlanByDate(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgPlanNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to fetch plan by date", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFetchPlan, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanItem(plan))
}

func (h *PlanHandler) GetPlanStats(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	planID := c.Param("planID")

	stats, err := h.planService.PlanStats(c.Request.Context(), planID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgPlanNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to compute plan stats", zap.String("plan_id", planID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPlanStats, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanStatsItem(stats))
}

func (h *PlanHandler) AddTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	planID := c.Param("planID")

	var req dto.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildAddTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	plan, err := h.planService.AddTask(c.Request.Context(), planID, userID, input)
	if err != nil {
		if status, msgKey, ok := schedulingErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to add task", zap.String("plan_id", planID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAddTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToPlanItem(plan))
}

func (h *PlanHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	planID := c.Param("planID")
	taskID := c.Param("taskID")

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	plan, err := h.planService.UpdateTask(c.Request.Context(), planID, userID, taskID, input)
	if err != nil {
		if status, msgKey, ok := schedulingErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to update task",
			zap.String("plan_id", planID), zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanItem(plan))
}

func (h *PlanHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	planID := c.Param("planID")
	taskID := c.Param("taskID")

	var req dto.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	actualEndTime, err := validation.BuildActualEndTime(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	plan, err := h.planService.CompleteTask(c.Request.Context(), planID, userID, taskID, actualEndTime)
	if err != nil {
		if status, msgKey, ok := schedulingErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to complete task",
			zap.String("plan_id", planID), zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCompleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanItem(plan))
}

func (h *PlanHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	planID := c.Param("planID")
	taskID := c.Param("taskID")

	plan, err := h.planService.DeleteTask(c.Request.Context(), planID, userID, taskID)
	if err != nil {
		if status, msgKey, ok := schedulingErrorResponse(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to delete task",
			zap.String("plan_id", planID), zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanItem(plan))
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	planID := c.Param("planID")

	if err := h.planService.DeletePlan(c.Request.Context(), planID, userID); err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgPlanNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete plan", zap.String("plan_id", planID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeletePlan, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// schedulingErrorResponse maps domain rejections to their HTTP shape.
// Lookup failures are 404s, every scheduling rejection is a 400 with a
// reason specific enough for a user-facing message.
func schedulingErrorResponse(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrPlanNotFound):
		return http.StatusNotFound, apierrors.MsgPlanNotFound, true
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, apierrors.MsgTaskNotFound, true
	case errors.Is(err, domain.ErrEndBeforeStart):
		return http.StatusBadRequest, apierrors.MsgEndBeforeStart, true
	case errors.Is(err, domain.ErrOutOfDayBounds):
		return http.StatusBadRequest, apierrors.MsgOutOfDayBounds, true
	case errors.Is(err, domain.ErrDayOverflow):
		return http.StatusBadRequest, apierrors.MsgDayOverflow, true
	case errors.Is(err, domain.ErrCascadeOverflow):
		return http.StatusBadRequest, apierrors.MsgCascadeOverflow, true
	}
	return 0, "", false
}
