package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/cart"
	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreHandler struct {
	catalog     Catalog
	submitter   Submitter
	storeNumber string
	log         *zap.Logger
}

func NewStoreHandler(catalog Catalog, submitter Submitter, storeNumber string, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		catalog:     catalog,
		submitter:   submitter,
		storeNumber: storeNumber,
		log:         log,
	}
}

// ProductsHandler godoc
// @Summary Каталог
// @Description Возвращает активные товары, отсортированные по названию
// @Tags store
// @Produce json
// @Success 200 {array} cart.Product
// @Failure 503 {object} dto.UnavailableErrorResponse "Каталог недоступен"
// @Router /api/v1/products [get]
func (h *StoreHandler) Products(c *gin.Context) {
	products, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error("Catalog snapshot failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.NewUnavailableError("catalog unavailable"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// RefreshCatalogHandler godoc
// @Summary Обновление каталога
// @Description Сбрасывает кэш каталога и перечитывает товары из базы
// @Security BearerAuth
// @Tags admin
// @Produce json
// @Success 200 {array} cart.Product
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Неавторизован"
// @Failure 503 {object} dto.UnavailableErrorResponse "Каталог недоступен"
// @Router /api/v1/admin/catalog/refresh [post]
func (h *StoreHandler) RefreshCatalog(c *gin.Context) {
	products, err := h.catalog.Refresh(c.Request.Context())
	if err != nil {
		h.log.Error("Catalog refresh failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.NewUnavailableError("catalog unavailable"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// CartSummaryHandler godoc
// @Summary Итог корзины
// @Description Считает количество и сумму по выбранным размерам. Повторная пара товар/размер перезаписывает предыдущую
// @Tags store
// @Accept json
// @Produce json
// @Param cart body dto.CartRequest true "Выбранные размеры и количества"
// @Success 200 {object} dto.CartSummary
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный товар, размер или количество"
// @Failure 503 {object} dto.UnavailableErrorResponse "Каталог недоступен"
// @Router /api/v1/cart/summary [post]
func (h *StoreHandler) CartSummary(c *gin.Context) {
	var req dto.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid cart request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	sum, ok := h.summarize(c, req.Selections)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCartSummary(sum))
}

// CheckoutHandler godoc
// @Summary Оформление заказа
// @Description Создаёт заказ и его позиции, возвращает данные для оплаты по Pix и ссылку WhatsApp
// @Tags store
// @Accept json
// @Produce json
// @Param order body dto.CheckoutRequest true "Покупатель и выбранные размеры"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверное имя, телефон или позиции"
// @Failure 422 {object} dto.EmptyCartErrorResponse "Корзина пуста"
// @Failure 502 {object} dto.OrderFailedErrorResponse "Заказ не создан или создан без позиций"
// @Failure 503 {object} dto.UnavailableErrorResponse "Каталог недоступен"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/orders [post]
func (h *StoreHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	sum, ok := h.summarize(c, req.Selections)
	if !ok {
		return
	}

	res, err := h.submitter.Submit(c.Request.Context(), sum, service.CustomerInput{
		Name:  req.CustomerName,
		Phone: req.CustomerPhone,
	})
	if err != nil {
		var verr *service.ValidationError
		var itemsErr *service.OrderItemsError
		var createErr *service.OrderCreationError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, dto.NewEmptyCartError())
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("validation failed", []dto.FieldError{
				{Field: verr.Field, Message: verr.Message},
			}))
		case errors.As(err, &createErr):
			c.JSON(http.StatusBadGateway, dto.NewOrderCreationError())
		case errors.As(err, &itemsErr):
			c.JSON(http.StatusBadGateway, dto.NewOrderItemsError(itemsErr.OrderID.String()))
		default:
			h.log.Error("Checkout failed (unexpected error)", zap.String("phase", res.Phase.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	pay := service.NewPaymentInstructions(h.storeNumber, sum.TotalPrice, res.OrderID)
	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		OrderID: res.OrderID.String(),
		Cart:    toCartSummary(sum),
		Payment: dto.Payment{
			PixKey:      pay.PixKey,
			Amount:      pay.Amount,
			Message:     pay.Message,
			WhatsAppURL: pay.WhatsAppURL,
		},
	})
}

// summarize replays the request selections onto a fresh store. Later entries
// for the same product and size overwrite earlier ones. On failure the
// response is already written.
func (h *StoreHandler) summarize(c *gin.Context, selections []dto.Selection) (cart.Summary, bool) {
	store, err := h.catalog.NewStore(c.Request.Context())
	if err != nil {
		h.log.Error("Catalog snapshot failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.NewUnavailableError("catalog unavailable"))
		return cart.Summary{}, false
	}

	var fields []dto.FieldError
	for i, sel := range selections {
		prefix := fmt.Sprintf("selections[%d]", i)

		id, err := uuid.Parse(sel.ProductID)
		if err != nil {
			fields = append(fields, dto.FieldError{Field: prefix + ".product_id", Message: "invalid product id"})
			continue
		}
		size, err := cart.ParseSize(sel.Size)
		if err != nil {
			fields = append(fields, dto.FieldError{Field: prefix + ".size", Message: err.Error()})
			continue
		}
		if sel.Quantity < 0 || sel.Quantity > cart.MaxQuantityPerSize {
			fields = append(fields, dto.FieldError{
				Field:   prefix + ".quantity",
				Message: fmt.Sprintf("quantity must be between 0 and %d", cart.MaxQuantityPerSize),
			})
			continue
		}
		if !store.SetQuantity(id, size, sel.Quantity) {
			fields = append(fields, dto.FieldError{Field: prefix + ".product_id", Message: service.ErrUnknownProduct.Error()})
		}
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid selections", fields))
		return cart.Summary{}, false
	}
	return cart.Summarize(store), true
}
