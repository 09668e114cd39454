package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yumzy-backend/domain"
	"yumzy-backend/internal/api/presenters"
	"yumzy-backend/pkg/shopping"
)

type (
	ShoppingHandler interface {
		CreateShoppingList(c *fiber.Ctx) error
		GetUserShoppingLists(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
		UpdateShoppingList(c *fiber.Ctx) error
		DeleteShoppingList(c *fiber.Ctx) error
		AddListItem(c *fiber.Ctx) error
		UpdateListItem(c *fiber.Ctx) error
		RemoveListItem(c *fiber.Ctx) error
		CreateFromRecipe(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) CreateShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateShoppingListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateShoppingList, err)
	}

	res, err := h.shoppingService.CreateShoppingList(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedCreateShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateShoppingList)
}

func (h *shoppingHandler) GetUserShoppingLists(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingService.GetUserShoppingLists(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	res, err := h.shoppingService.GetShoppingList(c.Context(), listID, userID)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingHandler) UpdateShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	req := new(domain.UpdateShoppingListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingList, err)
	}

	res, err := h.shoppingService.UpdateShoppingList(c.Context(), listID, *req, userID)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedUpdateShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateShoppingList)
}

func (h *shoppingHandler) DeleteShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	if err := h.shoppingService.DeleteShoppingList(c.Context(), listID, userID); err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedDeleteShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingList)
}

func (h *shoppingHandler) AddListItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	req := new(domain.ShoppingListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedModifyListItem, err)
	}

	res, err := h.shoppingService.AddListItem(c.Context(), listID, *req, userID)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedModifyListItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddListItem)
}

func (h *shoppingHandler) UpdateListItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")
	itemID := c.Params("itemId")

	req := new(domain.UpdateShoppingListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedModifyListItem, err)
	}

	res, err := h.shoppingService.UpdateListItem(c.Context(), listID, itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedModifyListItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateListItem)
}

func (h *shoppingHandler) RemoveListItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")
	itemID := c.Params("itemId")

	if err := h.shoppingService.RemoveListItem(c.Context(), listID, itemID, userID); err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedModifyListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveListItem)
}

func (h *shoppingHandler) CreateFromRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("recipeId")

	res, err := h.shoppingService.CreateFromRecipe(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedCreateShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateShoppingList)
}
