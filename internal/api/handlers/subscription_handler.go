package handlers

import (
	"github.com/esraghu/milk-delivery-app/domain"
	"github.com/esraghu/milk-delivery-app/internal/api/presenters"
	"github.com/esraghu/milk-delivery-app/pkg/subscription"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		GetSubscription(c *fiber.Ctx) error
		SetSubscription(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, validator *validator.Validate) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

func (h *subscriptionHandler) GetSubscription(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.subscriptionService.GetSubscription(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubscription, err)
	}
	if res == nil {
		// Never subscribed is a valid empty result, not a failure.
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageNoActiveSubscription)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubscription)
}

func (h *subscriptionHandler) SetSubscription(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetSubscriptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetSubscription, err)
	}

	res, err := h.subscriptionService.SetSubscription(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetSubscription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSetSubscription)
}
