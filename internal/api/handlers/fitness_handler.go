package handlers

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/internal/api/presenters"
	"NutriTrack-Backend/pkg/fitness"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FitnessHandler interface {
		CreatePlan(c *fiber.Ctx) error
		GetPlans(c *fiber.Ctx) error
		GetPlanByID(c *fiber.Ctx) error
		GetPlanProgress(c *fiber.Ctx) error
	}

	fitnessHandler struct {
		fitnessService fitness.FitnessService
		validator      *validator.Validate
	}
)

func NewFitnessHandler(fitnessService fitness.FitnessService, validator *validator.Validate) FitnessHandler {
	return &fitnessHandler{
		fitnessService: fitnessService,
		validator:      validator,
	}
}

func (h *fitnessHandler) CreatePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFitnessPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlan, err)
	}

	res, err := h.fitnessService.CreatePlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePlan)
}

func (h *fitnessHandler) GetPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.fitnessService.GetPlans(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *fitnessHandler) GetPlanByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.fitnessService.GetPlanByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlan)
}

func (h *fitnessHandler) GetPlanProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.fitnessService.GetPlanProgress(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlanProgress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlanProgress)
}
