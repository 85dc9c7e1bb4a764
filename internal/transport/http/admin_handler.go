package httpapi

import (
	"errors"
	"net/http"

	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	admin Admin
	auth  Auth
	log   *zap.Logger
}

func NewAdminHandler(admin Admin, auth Auth, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		admin: admin,
		auth:  auth,
		log:   log,
	}
}

// AdminLoginHandler godoc
// @Summary Вход администратора
// @Description Проверяет пароль и выдаёт access токен
// @Tags admin
// @Accept json
// @Produce json
// @Param login body dto.AdminLoginRequest true "Пароль администратора"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Неверный пароль"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid admin login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	token, exp, err := h.auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid password"))
			return
		}
		h.log.Error("Admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{AccessToken: token, ExpiresAt: exp})
}

// AdminOrdersHandler godoc
// @Summary Заказы и сводка
// @Description Все заказы с позициями, сумма одобренных, общая сумма и сводка товар/размер
// @Security BearerAuth
// @Tags admin
// @Produce json
// @Param sort query string false "created_at (по умолчанию) или customer_name"
// @Success 200 {object} dto.AdminDashboard
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Неавторизован"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/admin/orders [get]
func (h *AdminHandler) Orders(c *gin.Context) {
	sort := service.ParseOrderSort(c.Query("sort"))

	d, err := h.admin.Dashboard(c.Request.Context(), sort)
	if err != nil {
		h.log.Error("Admin dashboard failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, toAdminDashboard(d))
}

// SetStatusHandler godoc
// @Summary Смена статуса заказа
// @Description Устанавливает pending или approved
// @Security BearerAuth
// @Tags admin
// @Accept json
// @Param id path string true "ID заказа"
// @Param status body dto.StatusRequest true "Новый статус"
// @Success 204
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный id или статус"
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Неавторизован"
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/admin/orders/{id}/status [patch]
func (h *AdminHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", []dto.FieldError{
			{Field: "id", Message: "must be a uuid"},
		}))
		return
	}

	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	err = h.admin.SetOrderStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid status", []dto.FieldError{
			{Field: "status", Message: "must be pending or approved"},
		}))
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("order not found"))
	default:
		h.log.Error("Set order status failed", zap.String("order_id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}
