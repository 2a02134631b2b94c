package handlers

import (
	"time"

	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/internal/api/presenters"
	"github.com/esraghu/milk-delivery-app/pkg/delivery"
	"github.com/gofiber/fiber/v2"
)

type (
	DeliveryHandler interface {
		GetDailyManifest(c *fiber.Ctx) error
	}

	deliveryHandler struct {
		deliveryService delivery.DeliveryService
	}
)

func NewDeliveryHandler(deliveryService delivery.DeliveryService) DeliveryHandler {
	return &deliveryHandler{deliveryService: deliveryService}
}

func (h *deliveryHandler) GetDailyManifest(c *fiber.Ctx) error {
	role := c.Locals("role").(string)
	if role != domain.RoleDeliveryPerson {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	date, err := time.Parse(domain.DateLayout, c.Params("date"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetManifest, domain.ErrInvalidDate)
	}

	res, err := h.deliveryService.BuildManifest(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetManifest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetManifest)
}
