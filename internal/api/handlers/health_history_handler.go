package handlers

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/internal/api/presenters"
	"NutriTrack-Backend/pkg/healthhistory"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HealthHistoryHandler interface {
		AddRecord(c *fiber.Ctx) error
		GetRecords(c *fiber.Ctx) error
		GetRecordByID(c *fiber.Ctx) error
	}

	healthHistoryHandler struct {
		healthHistoryService healthhistory.HealthHistoryService
		validator            *validator.Validate
	}
)

func NewHealthHistoryHandler(healthHistoryService healthhistory.HealthHistoryService, validator *validator.Validate) HealthHistoryHandler {
	return &healthHistoryHandler{
		healthHistoryService: healthHistoryService,
		validator:            validator,
	}
}

func (h *healthHistoryHandler) AddRecord(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddHealthRecordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddHealthRecord, err)
	}

	res, err := h.healthHistoryService.AddRecord(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddHealthRecord, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddHealthRecord)
}

func (h *healthHistoryHandler) GetRecords(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	records, count, err := h.healthHistoryService.GetRecords(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHealthHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"records": records,
		"total":   count,
	}, fiber.StatusOK, domain.MessageSuccessGetHealthHistory)
}

func (h *healthHistoryHandler) GetRecordByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.healthHistoryService.GetRecordByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetHealthRecord, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHealthRecord)
}
