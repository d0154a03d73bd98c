package handlers

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/internal/api/presenters"
	"NutriTrack-Backend/pkg/intake"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IntakeHandler interface {
		CreateIntake(c *fiber.Ctx) error
		CreateIntakeByName(c *fiber.Ctx) error
		GetIntakes(c *fiber.Ctx) error
		GetIntakeByID(c *fiber.Ctx) error
		UpdateIntake(c *fiber.Ctx) error
		DeleteIntake(c *fiber.Ctx) error
	}

	intakeHandler struct {
		intakeService intake.IntakeService
		validator     *validator.Validate
	}
)

func NewIntakeHandler(intakeService intake.IntakeService, validator *validator.Validate) IntakeHandler {
	return &intakeHandler{
		intakeService: intakeService,
		validator:     validator,
	}
}

func (h *intakeHandler) CreateIntake(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateIntakeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIntake, err)
	}

	res, err := h.intakeService.CreateIntake(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIntake, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateIntake)
}

func (h *intakeHandler) CreateIntakeByName(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateIntakeByNameRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIntake, err)
	}

	res, err := h.intakeService.CreateIntakeByName(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIntake, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateIntake)
}

func (h *intakeHandler) GetIntakes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	var start, end *time.Time
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIntakes, domain.ErrInvalidIntakeTime)
		}
		start = &parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIntakes, domain.ErrInvalidIntakeTime)
		}
		end = &parsed
	}

	intakes, count, err := h.intakeService.GetIntakes(c.Context(), userID, start, end, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIntakes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"intakes": intakes,
		"total":   count,
	}, fiber.StatusOK, domain.MessageSuccessGetIntakes)
}

func (h *intakeHandler) GetIntakeByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.intakeService.GetIntakeByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetIntake, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIntake)
}

func (h *intakeHandler) UpdateIntake(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateIntakeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIntake, err)
	}

	res, err := h.intakeService.UpdateIntake(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIntake, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateIntake)
}

func (h *intakeHandler) DeleteIntake(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.intakeService.DeleteIntake(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIntake, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIntake)
}
