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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout godoc
//
//	@Summary		Check out the current cart
//	@Description	Records the sale, decrements stock and empties the cart. A customer email or phone number gets a short confirmation; a failed confirmation does not fail the sale.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	false	"Optional customer contact"
//	@Success		201			{object}	models.CheckoutResult	"Sale recorded"
//	@Failure		400			{object}	response.ErrorResponse	"Empty cart or invalid contact"
//	@Failure		409			{object}	response.ErrorResponse	"Stock changed since the item was added"
//	@Failure		502			{object}	response.ErrorResponse	"Sale could not be written"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CheckoutRequest
		if r.ContentLength != 0 {
			if !utils.ParseAndValidate(r, w, &req, h.validator) {
				return
			}
		}

		result, err := h.checkoutService.Checkout(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Checkout failed", "error", err)
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed",
			"saleID", result.Sale.ID,
			"total", result.Sale.TotalAmount.StringFixed(2),
			"items", len(result.Sale.Items),
		)
		response.Success(w, http.StatusCreated, result)
	}
}
