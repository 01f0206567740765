package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the value object used as the identity of every aggregate in the
// atelier: orders, bills, payments and actors. It wraps the
// github.com/google/uuid implementation so the domain never handles the
// library type directly.
//
// The zero value is invalid; construct instances through NewUUID,
// UUIDFromString or UUIDFromBytes. UUID is immutable and safe for
// concurrent use.
//
// Example usage:
//
//	// Mint an id for a freshly placed order
//	orderID := kernel.NewUUID()
//
//	// Parse the bill id from a request path
//	billID, err := kernel.UUIDFromString(ctx.Param("billId"))
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is how orders,
// bills and payments receive their identity: handlers mint the id before
// the command runs so the caller learns it from the response.
//
// Example:
//
//	billID := kernel.NewUUID()
//	fmt.Println(billID.String()) // e.g., "7c9e6679-7425-40de-944b-e07fc1f90ae7"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats including:
//   - "7c9e6679-7425-40de-944b-e07fc1f90ae7"
//   - "{7c9e6679-7425-40de-944b-e07fc1f90ae7}"
//   - "urn:uuid:7c9e6679-7425-40de-944b-e07fc1f90ae7"
//
// Returns an error if the string is not a valid UUID format. The HTTP
// layer uses this to turn path parameters into identifiers before a
// command or query is built.
//
// Example:
//
//	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
//	if err != nil {
//	    return badRequest(ctx, "Invalid order id")
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice. The slice must be
// exactly 16 bytes long. The repositories use this when restoring
// aggregates from their uuid columns.
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return nil, err
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// representation. For a zero value this is the nil UUID string. Used in
// API responses, log fields and notification payloads.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value, which the gorm DTOs store
// in their uuid columns. For a plain byte slice, slice the result:
// id.Bytes()[:].
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
//
// Example:
//
//	if !payment.ID().IsEqual(cmd.PaymentID()) {
//	    // a different payment is already on the ledger
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks that the UUID was built through a constructor. Returns
// ErrUUIDIsNotConstructed for the zero value. Command and query
// constructors call this on every identifier they accept.
//
// Example:
//
//	func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return GetOrderQuery{}, err
//	    }
//	    ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
