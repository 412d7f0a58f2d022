package queries

import (
	"errors"
	"time"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the session's in-flight cart, e.g. when a client
// returns from creating a delivery address mid-checkout.
type GetCartQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart query for one session.
func NewGetCartQuery(sessionID kernel.UUID) (GetCartQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// SessionID returns the session the cart belongs to.
func (q GetCartQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetCartQueryResponse is the stored cart in its flat form plus the
// decoded per-product quantities.
type GetCartQueryResponse struct {
	MerchantID kernel.UUID
	ItemIDs    []kernel.UUID
	Quantities map[kernel.UUID]int
	CreatedAt  time.Time
}
