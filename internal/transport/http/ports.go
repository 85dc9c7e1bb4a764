package httpapi

import (
	"context"
	"time"

	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/google/uuid"
)

type Catalog interface {
	Snapshot(ctx context.Context) ([]cart.Product, error)
	NewStore(ctx context.Context) (*cart.Store, error)
	Refresh(ctx context.Context) ([]cart.Product, error)
}

type Submitter interface {
	Submit(ctx context.Context, sum cart.Summary, in service.CustomerInput) (service.SubmitResult, error)
}

type Admin interface {
	Dashboard(ctx context.Context, sort service.OrderSort) (*service.Dashboard, error)
	SetOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
}

type Auth interface {
	Login(ctx context.Context, password string) (string, time.Time, error)
	Authorize(ctx context.Context, token string) error
}

// Deps are the collaborators the router dispatches to.
type Deps struct {
	Catalog   Catalog
	Submitter Submitter
	Admin     Admin
	Auth      Auth

	// Store phone number, used as the PIX key and the WhatsApp contact.
	StoreNumber string
	CORSOrigins []string
}
