// Package kernel provides core domain primitives shared by the storefront
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - UUID: an immutable identifier value object wrapping google/uuid
//   - Money: an exact-decimal monetary amount backed by shopspring/decimal
//
// Both types follow the constructor pattern: the zero value is invalid and
// Validate reports whether a value was created through its factory function.
package kernel
