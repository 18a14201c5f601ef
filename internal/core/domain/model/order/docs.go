// Package order provides domain entities and business logic for equipment-rental
// orders captured through the conversational voice interface. It implements the
// Order aggregate root and its status lifecycle.
//
// The package includes:
//   - Order: The aggregate root holding identity, business fields, and status
//   - Status: The closed set of order states (pending, confirmed, completed)
//
// Key business rules:
//   - An order's identity and timestamp are assigned once at ingestion and never change
//   - Optional business fields (equipment, duration, location) are always present,
//     carrying an explicit unset sentinel when the voice agent did not capture them
//   - Status starts at Pending; any valid status may replace any other (last write
//     wins), so there is deliberately no transition graph
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
