package dto

// BaseError единый формат ошибки API.
// Code: snake_case код для клиента. Fields заполняется только для validation_error,
// OrderID только для order_items_failed.
type BaseError struct {
	Code    string       `json:"code" example:"validation_error"`
	Message string       `json:"message" example:"validation failed"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
	OrderID string       `json:"order_id,omitempty"`
}

type FieldError struct {
	Field   string `json:"field" example:"phone"`
	Message string `json:"message" example:"phone must have 10 or 11 digits including area code"`
}

// Обёртки для @Failure в swagger. JSON у всех одинаковый.

// ValidationErrorResponse 400, Code: "validation_error"
type ValidationErrorResponse BaseError

// UnauthorizedErrorResponse 401, Code: "unauthorized"
type UnauthorizedErrorResponse BaseError

// NotFoundErrorResponse 404, Code: "not_found"
type NotFoundErrorResponse BaseError

// EmptyCartErrorResponse 422, Code: "empty_cart"
type EmptyCartErrorResponse BaseError

// OrderFailedErrorResponse 502, Code: "order_creation_failed" или "order_items_failed"
// Во втором случае заказ уже создан и OrderID заполнен.
type OrderFailedErrorResponse BaseError

// UnavailableErrorResponse 503, Code: "unavailable"
type UnavailableErrorResponse BaseError

// InternalErrorResponse 500, Code: "internal_error"
type InternalErrorResponse BaseError

func NewValidationError(msg string, fields []FieldError) ValidationErrorResponse {
	return ValidationErrorResponse(BaseError{Code: "validation_error", Message: msg, Fields: fields})
}

func NewEmptyCartError() EmptyCartErrorResponse {
	return EmptyCartErrorResponse(BaseError{Code: "empty_cart", Message: "select at least one item before checkout"})
}

// NewOrderCreationError: заказ не создан, корзину можно отправить повторно
func NewOrderCreationError() OrderFailedErrorResponse {
	return OrderFailedErrorResponse(BaseError{Code: "order_creation_failed", Message: "could not register the order, please try again"})
}

// NewOrderItemsError: заказ создан без позиций; повтор создаст новый заказ
func NewOrderItemsError(orderID string) OrderFailedErrorResponse {
	return OrderFailedErrorResponse(BaseError{
		Code:    "order_items_failed",
		Message: "the order was registered but its items were not saved, please try again",
		OrderID: orderID,
	})
}

func NewUnauthorizedError(msg string) UnauthorizedErrorResponse {
	return UnauthorizedErrorResponse(BaseError{Code: "unauthorized", Message: msg})
}

func NewNotFoundError(msg string) NotFoundErrorResponse {
	return NotFoundErrorResponse(BaseError{Code: "not_found", Message: msg})
}

func NewUnavailableError(msg string) UnavailableErrorResponse {
	return UnavailableErrorResponse(BaseError{Code: "unavailable", Message: msg})
}

func NewInternalError(details string) InternalErrorResponse {
	return InternalErrorResponse(BaseError{Code: "internal_error", Message: "internal server error", Details: details})
}
