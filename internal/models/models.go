package models

import (
	"time"

	"storefront/internal/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Статус заказа: закрытое множество из двух значений
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
)

func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusApproved
}

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string          `gorm:"type:text;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ImageURL    string          `gorm:"type:text"`
	IsActive    bool            `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Product) TableName() string { return "products" }

type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName  string          `gorm:"type:text;not null;index"`
	CustomerPhone string          `gorm:"type:varchar(11);not null"` // только цифры
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status        OrderStatus     `gorm:"type:text;not null;default:'pending';index"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:ux_order_items_order_product_size"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_order_items_order_product_size"`
	Size      cart.Size       `gorm:"type:text;not null;uniqueIndex:ux_order_items_order_product_size"`
	Quantity  int             `gorm:"type:int;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"` // цена за единицу на момент заказа

	CreatedAt time.Time `gorm:"not null;default:now()"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string { return "order_items" }

// ProductName returns the joined product name, or the product id when the
// product row was not preloaded.
func (it OrderItem) ProductName() string {
	if it.Product != nil && it.Product.Name != "" {
		return it.Product.Name
	}
	return it.ProductID.String()
}
