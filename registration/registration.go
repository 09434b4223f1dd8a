// Package registration enforces the business rules for signing up a user.
//
// Every rule returns an error in the pitfalls.ValidationError class. These
// are expected failures, so callers must check them and decide what to do
// (ask again, route elsewhere) rather than let them escape.
package registration

import (
	"strings"

	"github.com/calebcase/pitfalls"
)

// DefaultMinimumAge is the youngest age ValidateAge accepts.
const DefaultMinimumAge = 18

// Policy holds the configurable rules.
type Policy struct {
	MinimumAge int
}

// DefaultPolicy returns the policy with DefaultMinimumAge.
func DefaultPolicy() Policy {
	return Policy{
		MinimumAge: DefaultMinimumAge,
	}
}

// ValidateAge returns an error if age is below the policy minimum.
func (p Policy) ValidateAge(age int) error {
	if age < p.MinimumAge {
		return pitfalls.ValidationError.New("user must be %d or older", p.MinimumAge)
	}

	return nil
}

// ValidateAge checks age against DefaultPolicy.
func ValidateAge(age int) error {
	return DefaultPolicy().ValidateAge(age)
}

// Registry holds the names already taken.
type Registry struct {
	names map[string]struct{}
}

// NewRegistry returns a registry with the given names taken.
func NewRegistry(names ...string) *Registry {
	r := &Registry{
		names: make(map[string]struct{}, len(names)),
	}

	for _, name := range names {
		r.names[name] = struct{}{}
	}

	return r
}

// SetName claims name. It fails without changing the registry if name is
// blank or already taken.
func (r *Registry) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return pitfalls.ValidationError.New("name must not be empty")
	}

	if r.Has(name) {
		return pitfalls.ValidationError.New("'%s' already exists", name)
	}

	r.names[name] = struct{}{}

	return nil
}

// Has returns true if name is taken.
func (r *Registry) Has(name string) bool {
	_, ok := r.names[name]

	return ok
}

// Len returns the number of names taken.
func (r *Registry) Len() int {
	return len(r.names)
}
