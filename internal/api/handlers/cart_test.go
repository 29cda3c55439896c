package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/retail-pos/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	"github.com/aaravmahajanofficial/retail-pos/internal/services/mocks"
	"github.com/aaravmahajanofficial/retail-pos/internal/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func cartWith(sessionID uuid.UUID, product *models.Product, qty int) *models.CartResponse {
	cart := models.NewCart(sessionID)
	cart.Lines = append(cart.Lines, models.CartLine{
		Product: models.CartProduct{
			ID:       product.ID,
			Name:     product.Name,
			Category: product.Category,
			Price:    product.Price,
			Stock:    product.Stock,
		},
		Quantity: qty,
	})

	return &models.CartResponse{Cart: cart, Totals: cart.Totals()}
}

func TestCartHandler_GetCart(t *testing.T) {
	t.Run("Success - Totals", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		userID := uuid.New()
		expected := cartWith(userID, sampleProduct(), 1)

		mockCartService.On("GetCart", mock.Anything, userID).Return(expected, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, userID, models.RoleSalesperson, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.CartResponse
		decodeData(t, rr, &got)
		assert.Len(t, got.Cart.Lines, 1)
		assert.True(t, decimal.NewFromInt(8500).Equal(got.Totals.Subtotal))
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/cart", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		userID := uuid.New()
		product := sampleProduct()

		mockCartService.On("AddItem", mock.Anything, userID, &models.AddItemRequest{ProductID: product.ID, Quantity: 2}).
			Return(cartWith(userID, product, 2), nil).Once()

		body := jsonBody(t, models.AddItemRequest{ProductID: product.ID, Quantity: 2})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", body, userID, models.RoleSalesperson, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.CartResponse
		decodeData(t, rr, &got)
		assert.Equal(t, 2, got.Cart.Lines[0].Quantity)
	})

	t.Run("Failure - Out Of Stock", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		userID := uuid.New()
		productID := uuid.New()

		mockCartService.On("AddItem", mock.Anything, userID, mock.Anything).
			Return(nil, appErrors.OutOfStockError("Shoes is out of stock")).Once()

		body := jsonBody(t, models.AddItemRequest{ProductID: productID})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", body, userID, models.RoleSalesperson, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		resp := decodeData(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeOutOfStock, resp.Error.Code)
	})

	t.Run("Failure - Missing Product", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", bytes.NewReader([]byte(`{"quantity":1}`)),
			uuid.New(), models.RoleSalesperson, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCartHandler_SetQuantity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		userID := uuid.New()
		product := sampleProduct()

		mockCartService.On("SetQuantity", mock.Anything, userID, product.ID, 3).Return(cartWith(userID, product, 3), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items/"+product.ID.String(),
			bytes.NewReader([]byte(`{"quantity":3}`)), userID, models.RoleAdmin, map[string]string{"productId": product.ID.String()})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.SetQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Zero Quantity", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		userID := uuid.New()
		productID := uuid.New()

		mockCartService.On("SetQuantity", mock.Anything, userID, productID, 0).
			Return(nil, appErrors.InvalidQuantityError("Quantity must be at least 1")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items/"+productID.String(),
			bytes.NewReader([]byte(`{"quantity":0}`)), userID, models.RoleSalesperson, map[string]string{"productId": productID.String()})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.SetQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		resp := decodeData(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeInvalidQuantity, resp.Error.Code)
	})

	t.Run("Failure - Invalid Product ID", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items/x",
			bytes.NewReader([]byte(`{"quantity":1}`)), uuid.New(), models.RoleSalesperson, map[string]string{"productId": "x"})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.SetQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCartHandler_RemoveItemAndClear(t *testing.T) {
	t.Run("Remove Item", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		userID := uuid.New()
		productID := uuid.New()
		empty := models.NewCart(userID)

		mockCartService.On("RemoveItem", mock.Anything, userID, productID).
			Return(&models.CartResponse{Cart: empty, Totals: empty.Totals()}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart/items/"+productID.String(), nil,
			userID, models.RoleSalesperson, map[string]string{"productId": productID.String()})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.CartResponse
		decodeData(t, rr, &got)
		assert.Empty(t, got.Cart.Lines)
	})

	t.Run("Clear Cart", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		userID := uuid.New()

		mockCartService.On("ClearCart", mock.Anything, userID).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, userID, models.RoleSalesperson, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.ClearCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Clear Cart - Store Down", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)
		userID := uuid.New()

		mockCartService.On("ClearCart", mock.Anything, userID).Return(appErrors.DatabaseError("Failed to clear cart")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, userID, models.RoleSalesperson, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.ClearCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
