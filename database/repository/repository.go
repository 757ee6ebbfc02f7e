// Package repository holds shared data-access primitives used by the
// per-collection repositories.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID marks a malformed document id supplied by a client. Handlers
// translate it to a 400 rather than letting the driver error surface as a 500.
var ErrInvalidID = errors.New("invalid document id")

// ParseID converts a hex string into an ObjectID, normalizing malformed input
// to ErrInvalidID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// NewContext creates a context with the given timeout for a single store
// round trip.
func NewContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
