package http

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SaveCartRequest carries the session's cart selection in its flat form:
// one product ID per unit purchased.
type SaveCartRequest struct {
	SessionID  string   `json:"session_id"`
	MerchantID string   `json:"merchant_id"`
	ItemIDs    []string `json:"item_ids"`
}

// CartResponse is the session's current cart.
type CartResponse struct {
	MerchantID string         `json:"merchant_id"`
	ItemIDs    []string       `json:"item_ids"`
	Quantities map[string]int `json:"quantities"`
	CreatedAt  string         `json:"created_at"`
}

// CreateOrderRequest places an order from a flat cart selection.
type CreateOrderRequest struct {
	ClientID   string   `json:"client_id"`
	MerchantID string   `json:"merchant_id"`
	AddressID  string   `json:"address_id"`
	ItemIDs    []string `json:"item_ids"`
}

// CompleteOrderRequest identifies the courier reporting the delivery.
type CompleteOrderRequest struct {
	CourierID string `json:"courier_id"`
}

// OrderResponse is one order with its line-item snapshot. Monetary amounts
// are decimal strings with two fraction digits.
type OrderResponse struct {
	ID        string              `json:"id"`
	ClientID  string              `json:"client_id"`
	CourierID *string             `json:"courier_id,omitempty"`
	Status    string              `json:"status"`
	Subtotal  string              `json:"subtotal"`
	Tax       string              `json:"tax"`
	Total     string              `json:"total"`
	CreatedAt string              `json:"created_at"`
	Items     []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one purchased unit as captured at order time.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	ImageURL  string `json:"image_url"`
}

// ProductResponse is one catalog entry of a merchant.
type ProductResponse struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	ImageURL   string `json:"image_url"`
}

// OrderStatsResponse reports order counts per lifecycle status.
type OrderStatsResponse struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Total      int64 `json:"total"`
}
