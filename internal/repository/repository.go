// Package repository maps team and preference rows in Postgres to domain
// models. Every method commits on its own; there is no transaction spanning
// several calls.
package repository

import (
	"errors"
	"fmt"
)

// ErrStorage marks failures raised by the database engine: connectivity,
// constraint violations and the like.
var ErrStorage = errors.New("storage error")

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
