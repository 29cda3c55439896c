package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/retail-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	service "github.com/aaravmahajanofficial/retail-pos/internal/services"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// CartHandler serves the till cart. Each signed-in user works on their own
// cart, keyed by user ID.
type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// GetCart godoc
//
//	@Summary		Get the current cart
//	@Description	Returns the cart lines with subtotal, tax and total.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartResponse		"Cart with totals"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to load cart", "error", err)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//
//	@Summary		Add an item to the cart
//	@Description	Adds quantity (default 1) of a product. The line never exceeds the product's stock.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product and quantity"
//	@Success		200		{object}	models.CartResponse		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid input"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		422		{object}	response.ErrorResponse	"Out of stock or insufficient stock"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to add item", "productID", req.ProductID, "error", err)
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", "productID", req.ProductID, "lines", len(cart.Cart.Lines))
		response.Success(w, http.StatusOK, cart)
	}
}

// SetQuantity godoc
//
//	@Summary		Set a line quantity
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		string						true	"Product ID (UUID)"
//	@Param			quantity	body		models.SetQuantityRequest	true	"New quantity"
//	@Success		200			{object}	models.CartResponse			"Updated cart"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid input"
//	@Failure		404			{object}	response.ErrorResponse		"Item not in cart"
//	@Failure		422			{object}	response.ErrorResponse		"Invalid or insufficient quantity"
//	@Security		BearerAuth
//	@Router			/cart/items/{productId} [put]
func (h *CartHandler) SetQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.SetQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.SetQuantity(r.Context(), claims.UserID, productID, req.Quantity)
		if err != nil {
			logger.Warn("Failed to set quantity", "productID", productID, "quantity", req.Quantity, "error", err)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary	Remove a line from the cart
//	@Tags		Cart
//	@Produce	json
//	@Param		productId	path		string					true	"Product ID (UUID)"
//	@Success	200			{object}	models.CartResponse		"Updated cart"
//	@Failure	400			{object}	response.ErrorResponse	"Invalid product ID"
//	@Security	BearerAuth
//	@Router		/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), claims.UserID, productID)
		if err != nil {
			logger.Error("Failed to remove item", "productID", productID, "error", err)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//
//	@Summary	Abandon the current cart
//	@Tags		Cart
//	@Success	204
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if err := h.cartService.ClearCart(r.Context(), claims.UserID); err != nil {
			logger.Error("Failed to clear cart", "error", err)
			response.Error(w, err)
			return
		}

		logger.Info("Cart abandoned")
		w.WriteHeader(http.StatusNoContent)
	}
}
