// Package kernel provides core domain primitives for the rental order system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Timestamp: A value object for millisecond-precision creation times that double as storage keys
//   - OrderID: A value object for order identifiers derived from their creation timestamp
//   - Field: An explicit optional string, distinguishing "unset" from the empty string
//   - UUID: A value object for unique identifiers, used for voice session handles
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
