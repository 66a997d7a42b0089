package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates the substrate holds no value for the key.
var ErrKeyNotFound = errors.New("store: key not found")

// ErrRecordNotFound indicates a collection holds no record with the id.
var ErrRecordNotFound = errors.New("store: record not found")

// KeyValue is the durable substrate collections mirror themselves into.
// Values are opaque strings; collections serialise themselves as JSON
// arrays under a fixed key.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
