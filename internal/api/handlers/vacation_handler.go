package handlers

import (
	"errors"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/internal/api/presenters"
	"github.com/esraghu/milk-delivery-app/pkg/vacation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VacationHandler interface {
		AddVacation(c *fiber.Ctx) error
		ListVacations(c *fiber.Ctx) error
	}

	vacationHandler struct {
		vacationService vacation.VacationService
		validator       *validator.Validate
	}
)

func NewVacationHandler(vacationService vacation.VacationService, validator *validator.Validate) VacationHandler {
	return &vacationHandler{
		vacationService: vacationService,
		validator:       validator,
	}
}

func (h *vacationHandler) AddVacation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddVacationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddVacation, err)
	}

	res, err := h.vacationService.AddVacation(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrVacationOverlap) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAddVacation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddVacation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddVacation)
}

func (h *vacationHandler) ListVacations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.vacationService.ListVacations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVacations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVacations)
}
