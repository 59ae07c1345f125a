// Package customer provides the Customer entity for the storefront domain.
//
// Customer is a self-validating entity: it is created through a validating
// factory, restored from storage through a trusting constructor, and updated
// atomically through UpdateInfo. An invalid Customer cannot exist in memory.
//
// Key business rules:
//   - name must be non-blank, 3 to 100 characters
//   - email must look like "local-part@domain" (uniqueness is enforced by
//     the application layer against storage, not here)
//   - phone is optional; when present it must contain 10 or 11 digits
//     after stripping formatting characters
//
// Equality between customers is id-based once persisted.
package customer
