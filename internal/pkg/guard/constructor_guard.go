// Package guard provides the constructor guard embedded by commands, queries
// and domain objects that must only be created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and the caller passed a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as created through its constructor. The zero
// value is "not constructed", so a struct literal fails validation.
//
// Example:
//
//	type TransitionPackageCommand struct {
//	    packageID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c TransitionPackageCommand) Validate() error {
//	    return c.guard.Validate(ErrTransitionPackageCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
