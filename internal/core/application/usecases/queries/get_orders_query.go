// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing
// the domain aggregates, and return flat presentation models.
package queries

import (
	"errors"
	"time"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via a NewGet*OrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders one participant takes part in,
// newest first. Each role sees the same order list filtered by its own
// column: clients their purchases, merchants their sales, couriers their
// deliveries.
type GetOrdersQuery struct {
	role          ParticipantRole
	participantID kernel.UUID

	guard guard.ConstructorGuard
}

// ParticipantRole selects which side of the order the filter applies to.
type ParticipantRole int

const (
	// RoleClient filters by the ordering client.
	RoleClient ParticipantRole = iota + 1
	// RoleMerchant filters by the fulfilling merchant.
	RoleMerchant
	// RoleCourier filters by the assigned courier.
	RoleCourier
)

// NewGetClientOrdersQuery creates a query for a client's purchase history.
func NewGetClientOrdersQuery(clientID kernel.UUID) (GetOrdersQuery, error) {
	return newGetOrdersQuery(RoleClient, clientID)
}

// NewGetMerchantOrdersQuery creates a query for a merchant's sales.
func NewGetMerchantOrdersQuery(merchantID kernel.UUID) (GetOrdersQuery, error) {
	return newGetOrdersQuery(RoleMerchant, merchantID)
}

// NewGetCourierOrdersQuery creates a query for a courier's deliveries.
func NewGetCourierOrdersQuery(courierID kernel.UUID) (GetOrdersQuery, error) {
	return newGetOrdersQuery(RoleCourier, courierID)
}

func newGetOrdersQuery(role ParticipantRole, participantID kernel.UUID) (GetOrdersQuery, error) {
	if err := participantID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		role:          role,
		participantID: participantID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Role returns which order column the filter applies to.
func (q GetOrdersQuery) Role() ParticipantRole {
	return q.role
}

// ParticipantID returns the filtered participant.
func (q GetOrdersQuery) ParticipantID() kernel.UUID {
	return q.participantID
}

// GetOrdersQueryResponse is the presentation model of one order. Monetary
// amounts are pre-rendered strings with two fractional digits.
type GetOrdersQueryResponse struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	CourierID *kernel.UUID
	Status    string
	Subtotal  string
	Tax       string
	Total     string
	CreatedAt time.Time
	Items     []OrderItemResponse
}

// OrderItemResponse is one purchased unit as captured at order time.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice string
	ImageURL  string
}
