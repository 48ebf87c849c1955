// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

// KeyGenerator mints opaque registration-key tokens. Tokens must be
// cryptographically random and unpredictable.
type KeyGenerator interface {
	Generate() (string, error)
}
