// Package kernel contains the shared value objects of the domain model:
// identifiers, geographic locations, and postal addresses.
//
// Every type in this package is an immutable value object created through a
// validating constructor. The zero value of each type is invalid and fails
// Validate; aggregates rely on this to reject improperly assembled state
// coming back from persistence.
package kernel
