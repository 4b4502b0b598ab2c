package order

import (
	"shopfront/internal/api"
)

type OrderItemRow struct {
	ID          api.ID     `json:"id"`
	OrderID     api.ID     `json:"order_id"`
	ProductID   api.ID     `json:"product_id"`
	ProductName string     `json:"product_name"`
	VariantID   api.ID     `json:"variant_id"`
	Quantity    int        `json:"quantity"`
	Price       api.Amount `json:"price"`
}

type OrderRow struct {
	ID            api.ID          `json:"id"`
	UserID        api.ID          `json:"user_id"`
	UserEmail     *string         `json:"user_email"`
	UserName      *string         `json:"user_name"`
	TotalAmount   api.Amount      `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     *string         `json:"created_at"`
	Items         []*OrderItemRow `json:"items"`
}

func MapOrderItem(row *OrderItemRow) OrderItem {
	return OrderItem{
		ID:          row.ID.String(),
		OrderID:     row.OrderID.String(),
		ProductID:   row.ProductID.String(),
		ProductName: row.ProductName,
		VariantID:   row.VariantID.String(),
		Quantity:    row.Quantity,
		Price:       row.Price.Float64(),
	}
}

func MapOrder(row *OrderRow) *Order {
	if row == nil {
		return nil
	}

	items := make([]OrderItem, 0, len(row.Items))
	for _, r := range row.Items {
		if r == nil {
			continue
		}
		items = append(items, MapOrderItem(r))
	}

	o := &Order{
		ID:            row.ID.String(),
		UserID:        row.UserID.String(),
		TotalAmount:   row.TotalAmount.Float64(),
		Status:        OrderStatus(row.Status),
		PaymentStatus: PaymentStatus(row.PaymentStatus),
		Items:         items,
	}
	if row.UserEmail != nil {
		o.UserEmail = *row.UserEmail
	}
	if row.UserName != nil {
		o.UserName = *row.UserName
	}
	if row.CreatedAt != nil {
		o.CreatedAt = *row.CreatedAt
	}
	return o
}

func MapOrders(rows []*OrderRow) []*Order {
	orders := make([]*Order, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		orders = append(orders, MapOrder(row))
	}
	return orders
}
