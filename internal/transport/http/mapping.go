package httpapi

import (
	"storefront/internal/cart"
	"storefront/internal/dto"
	"storefront/internal/service"
)

func toCartSummary(sum cart.Summary) dto.CartSummary {
	items := make([]dto.CartItem, 0, len(sum.Items))
	for _, it := range sum.Items {
		sizes := make([]dto.SizeQuantity, 0, len(it.Sizes))
		for _, sq := range it.Sizes {
			sizes = append(sizes, dto.SizeQuantity{Size: string(sq.Size), Quantity: sq.Quantity})
		}
		items = append(items, dto.CartItem{
			ProductID: it.Product.ID.String(),
			Name:      it.Product.Name,
			UnitPrice: it.Product.UnitPrice,
			Sizes:     sizes,
			Quantity:  it.Quantity(),
			Subtotal:  it.Subtotal(),
		})
	}
	return dto.CartSummary{
		Items:          items,
		TotalQuantity:  sum.TotalQuantity,
		TotalPrice:     sum.TotalPrice,
		TotalFormatted: service.FormatBRL(sum.TotalPrice),
	}
}

func toAdminDashboard(d *service.Dashboard) dto.AdminDashboard {
	orders := make([]dto.AdminOrder, 0, len(d.Orders))
	for _, o := range d.Orders {
		items := make([]dto.AdminOrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, dto.AdminOrderItem{
				ProductID:   it.ProductID.String(),
				ProductName: it.ProductName(),
				Size:        string(it.Size),
				Quantity:    it.Quantity,
				UnitPrice:   it.Price,
			})
		}
		orders = append(orders, dto.AdminOrder{
			ID:             o.ID.String(),
			CreatedAt:      o.CreatedAt,
			CustomerName:   o.CustomerName,
			CustomerPhone:  o.CustomerPhone,
			PhoneFormatted: service.FormatCustomerPhone(o.CustomerPhone),
			Status:         string(o.Status),
			TotalAmount:    o.TotalAmount,
			Items:          items,
		})
	}

	sizes := make(map[string]map[string]int, len(d.Summary.SizeSummary))
	for name, bySize := range d.Summary.SizeSummary {
		m := make(map[string]int, len(bySize))
		for size, qty := range bySize {
			m[string(size)] = qty
		}
		sizes[name] = m
	}

	orphans := make([]string, 0, len(d.Summary.OrphanedOrders))
	for _, id := range d.Summary.OrphanedOrders {
		orphans = append(orphans, id.String())
	}

	return dto.AdminDashboard{
		Orders: orders,
		Summary: dto.AdminSummary{
			ApprovedSalesTotal:  d.Summary.ApprovedSalesTotal,
			EstimatedGrandTotal: d.Summary.EstimatedGrandTotal,
			SizeSummary:         sizes,
			OrphanedOrders:      orphans,
		},
	}
}
