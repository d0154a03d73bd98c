package handlers

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/internal/api/presenters"
	"NutriTrack-Backend/pkg/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	StatsHandler interface {
		GetQuickStats(c *fiber.Ctx) error
		GetComprehensiveStats(c *fiber.Ctx) error
		GetCalorieStats(c *fiber.Ctx) error
		GetMacronutrientStats(c *fiber.Ctx) error
		GetMicronutrientStats(c *fiber.Ctx) error
		GetConsumptionPatterns(c *fiber.Ctx) error
		GetProgressStats(c *fiber.Ctx) error
		GetNutritionOverview(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
		validator    *validator.Validate
	}
)

func NewStatsHandler(statsService stats.StatsService, validator *validator.Validate) StatsHandler {
	return &statsHandler{
		statsService: statsService,
		validator:    validator,
	}
}

// parseRange resolves the caller's unit/num shorthand into a concrete range.
// Every stats endpoint except quick stats takes the same two query params.
func (h *statsHandler) parseRange(c *fiber.Ctx) (domain.StatsTimeRange, error) {
	simple := new(domain.SimpleTimeRange)

	if err := c.QueryParser(simple); err != nil {
		return domain.StatsTimeRange{}, err
	}

	if err := h.validator.Struct(simple); err != nil {
		return domain.StatsTimeRange{}, err
	}

	return h.statsService.ConvertSimpleRange(*simple), nil
}

func (h *statsHandler) userUUID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return userID, nil
}

func (h *statsHandler) GetQuickStats(c *fiber.Ctx) error {
	userID, err := h.userUUID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	res, err := h.statsService.GetQuickStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetQuickStats)
}

func (h *statsHandler) GetComprehensiveStats(c *fiber.Ctx) error {
	userID, err := h.userUUID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	timeRange, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidRange, err)
	}

	res, err := h.statsService.GetComprehensiveStats(c.Context(), userID, timeRange)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComprehensiveStats)
}

func (h *statsHandler) GetCalorieStats(c *fiber.Ctx) error {
	userID, err := h.userUUID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	timeRange, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidRange, err)
	}

	res, err := h.statsService.GetCalorieStats(c.Context(), userID, timeRange)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCalorieStats)
}

func (h *statsHandler) GetMacronutrientStats(c *fiber.Ctx) error {
	userID, err := h.userUUID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	timeRange, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidRange, err)
	}

	res, err := h.statsService.GetMacronutrientStats(c.Context(), userID, timeRange)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMacronutrients)
}

func (h *statsHandler) GetMicronutrientStats(c *fiber.Ctx) error {
	userID, err := h.userUUID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	timeRange, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidRange, err)
	}

	res, err := h.statsService.GetMicronutrientStats(c.Context(), userID, timeRange)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMicronutrients)
}

func (h *statsHandler) GetConsumptionPatterns(c *fiber.Ctx) error {
	userID, err := h.userUUID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	timeRange, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidRange, err)
	}

	res, err := h.statsService.GetConsumptionPatterns(c.Context(), userID, timeRange)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetConsumption)
}

func (h *statsHandler) GetProgressStats(c *fiber.Ctx) error {
	userID, err := h.userUUID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	timeRange, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidRange, err)
	}

	res, err := h.statsService.GetProgressStats(c.Context(), userID, timeRange)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProgress)
}

func (h *statsHandler) GetNutritionOverview(c *fiber.Ctx) error {
	userID, err := h.userUUID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	timeRange, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidRange, err)
	}

	res, err := h.statsService.GetNutritionOverview(c.Context(), userID, timeRange)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNutritionOverview)
}
