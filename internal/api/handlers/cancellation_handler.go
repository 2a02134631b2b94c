package handlers

import (
	"errors"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/internal/api/presenters"
	"github.com/esraghu/milk-delivery-app/pkg/cancellation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CancellationHandler interface {
		RecordCancellation(c *fiber.Ctx) error
		ListCancellations(c *fiber.Ctx) error
	}

	cancellationHandler struct {
		cancellationService cancellation.CancellationService
		validator           *validator.Validate
	}
)

func NewCancellationHandler(cancellationService cancellation.CancellationService, validator *validator.Validate) CancellationHandler {
	return &cancellationHandler{
		cancellationService: cancellationService,
		validator:           validator,
	}
}

func (h *cancellationHandler) RecordCancellation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecordCancellationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordCancellation, err)
	}

	res, err := h.cancellationService.RecordCancellation(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRecordCancellation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordCancellation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRecordCancellation)
}

func (h *cancellationHandler) ListCancellations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cancellationService.ListCancellations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCancellations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCancellations)
}
