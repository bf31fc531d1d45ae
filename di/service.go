// Package di holds the explicit wiring helpers used by composition roots.
//
// A Service wraps a constructed value together with a bag of the dependencies
// injected into it. Injectors attach dependencies one at a time and report
// wiring mistakes (duplicate keys, nil dependencies, nil bind functions) as
// typed errors instead of panicking later at first use.
//
// There is no container, no reflection-based injection and no lifecycle:
// wiring stays in main.
package di

import (
	"errors"
	"strconv"
)

// ErrNilTarget is returned when an injector is applied to a nil service or a
// service whose Val is nil.
var ErrNilTarget = errors.New("di: nil target service")

// DependencyKey names a dependency in a Service's Deps bag.
//
//	const KeyBoard di.DependencyKey = "notice.board"
type DependencyKey string

// DuplicateKeyError is returned when a key is injected twice into the same Service.
type DuplicateKeyError struct{ Key DependencyKey }

func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate dependency key "notice.board"
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// NilDependencyServiceError is returned when the dependency service (or its Val) is nil.
type NilDependencyServiceError struct{ Key DependencyKey }

func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// NilBindError is returned when Injecting was given a nil bind function.
type NilBindError struct{ Key DependencyKey }

func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Service is a constructed value plus the dependencies recorded while wiring it.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service from ctor.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: map[DependencyKey]any{}}
}

// Value returns the constructed value.
func (s *Service[T]) Value() *T { return s.Val }

// Injector wires something into a Service in place.
type Injector[T any] func(*Service[T]) error

// WithAll applies injectors in order and stops at the first error. Nil
// injectors are skipped.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if inj == nil {
			continue
		}
		if err := inj(s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting returns an Injector that records dep.Val under key and hands it to
// bind so the target can store it.
func Injecting[T any, D any](key DependencyKey, dep *Service[D], bind func(target *T, dependency *D)) Injector[T] {
	return func(s *Service[T]) error {
		switch {
		case s == nil || s.Val == nil:
			return ErrNilTarget
		case dep == nil || dep.Val == nil:
			return NilDependencyServiceError{Key: key}
		case bind == nil:
			return NilBindError{Key: key}
		}

		if s.Deps == nil {
			s.Deps = map[DependencyKey]any{}
		} else if _, taken := s.Deps[key]; taken {
			return DuplicateKeyError{Key: key}
		}

		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)
		return nil
	}
}
