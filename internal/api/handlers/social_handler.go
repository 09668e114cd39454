package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yumzy-backend/domain"
	"yumzy-backend/internal/api/presenters"
	"yumzy-backend/pkg/social"
)

type (
	SocialHandler interface {
		SubmitRating(c *fiber.Ctx) error
		DeleteRating(c *fiber.Ctx) error
		GetRecipeRatings(c *fiber.Ctx) error
	}

	socialHandler struct {
		socialService social.SocialService
		validator     *validator.Validate
	}
)

func NewSocialHandler(socialService social.SocialService, validator *validator.Validate) SocialHandler {
	return &socialHandler{
		socialService: socialService,
		validator:     validator,
	}
}

func (h *socialHandler) SubmitRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SubmitRatingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRating, err)
	}

	res, err := h.socialService.SubmitRating(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedSubmitRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSubmitRating)
}

func (h *socialHandler) DeleteRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	ratingID := c.Params("id")

	if err := h.socialService.DeleteRating(c.Context(), ratingID, userID); err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedDeleteRating, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRating)
}

func (h *socialHandler) GetRecipeRatings(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	page, limit := pageWindow(c)

	res, err := h.socialService.GetRecipeRatings(c.Context(), recipeID, page, limit)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedGetRatings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRatings)
}
