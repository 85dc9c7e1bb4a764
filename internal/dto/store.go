package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Selection struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type CartRequest struct {
	Selections []Selection `json:"selections"`
}

type SizeQuantity struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"59.90"`
	Sizes     []SizeQuantity  `json:"selected_sizes"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string" example:"119.80"`
}

type CartSummary struct {
	Items          []CartItem      `json:"items"`
	TotalQuantity  int             `json:"total_quantity"`
	TotalPrice     decimal.Decimal `json:"total_price" swaggertype:"string" example:"106.50"`
	TotalFormatted string          `json:"total_formatted"`
}

type CheckoutRequest struct {
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Selections    []Selection `json:"selections"`
}

type Payment struct {
	PixKey      string `json:"pix_key"`
	Amount      string `json:"amount"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

type CheckoutResponse struct {
	OrderID string      `json:"order_id"`
	Cart    CartSummary `json:"cart"`
	Payment Payment     `json:"payment"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AdminOrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"59.90"`
}

type AdminOrder struct {
	ID             string           `json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	CustomerName   string           `json:"customer_name"`
	CustomerPhone  string           `json:"customer_phone"`
	PhoneFormatted string           `json:"phone_formatted"`
	Status         string           `json:"status"`
	TotalAmount    decimal.Decimal  `json:"total_amount" swaggertype:"string" example:"106.50"`
	Items          []AdminOrderItem `json:"items"`
}

type AdminSummary struct {
	ApprovedSalesTotal  decimal.Decimal           `json:"approved_sales_total" swaggertype:"string" example:"106.50"`
	EstimatedGrandTotal decimal.Decimal           `json:"estimated_grand_total" swaggertype:"string" example:"106.50"`
	SizeSummary         map[string]map[string]int `json:"size_summary"`
	OrphanedOrders      []string                  `json:"orphaned_orders"`
}

type AdminDashboard struct {
	Orders  []AdminOrder `json:"orders"`
	Summary AdminSummary `json:"summary"`
}
