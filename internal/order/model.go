package order

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a member of the closed status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	VariantID   string
	Quantity    int
	Price       float64
}

type Order struct {
	ID            string
	UserID        string
	UserEmail     string
	UserName      string
	TotalAmount   float64
	Status        OrderStatus
	PaymentStatus PaymentStatus
	CreatedAt     string
	Items         []OrderItem
}

type CreateOrderInput struct {
	Items           []CreateOrderItem `json:"items"`
	ShippingAddress string            `json:"shippingAddress,omitempty"`
	DiscountCode    string            `json:"discountCode,omitempty"`
}

type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Tracking is the order tracking payload; the tracking detail shape is
// carrier-specific and passed through opaquely.
type Tracking struct {
	Status  string         `json:"status"`
	Detail  map[string]any `json:"tracking"`
	OrderID string         `json:"-"`
}
