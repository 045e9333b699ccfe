package steam

import (
  "errors"
  "fmt"
)

// ErrNotFound matches both not found flavors via errors.Is.
var ErrNotFound = errors.New("entity not found")

type AppNotFoundError struct {
  AppId int64
}

func (e AppNotFoundError) Error() string {
  return fmt.Sprintf("app with id %d not found", e.AppId)
}

func (e AppNotFoundError) Unwrap() error {
  return ErrNotFound
}

type PackageNotFoundError struct {
  PackageId int64
}

func (e PackageNotFoundError) Error() string {
  return fmt.Sprintf("package with id %d not found", e.PackageId)
}

func (e PackageNotFoundError) Unwrap() error {
  return ErrNotFound
}
