// Package sanitizer normalizes office input before validation and storage.
//
// All functions are idempotent. Invalid input is returned unchanged (or as
// the empty string) rather than as an error, so the validator can report it.
//
// Normalization includes:
//   - Free text (city, street, house and office numbers): trim and collapse whitespace
//   - Phone numbers: E.164 via libphonenumber, relative to a default region
//   - Status: canonical casing of Active / Inactive
package sanitizer
