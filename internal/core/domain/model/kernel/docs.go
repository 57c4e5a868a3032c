// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates and entities are composed of:
// currently the UUID identity type.
//
// Kernel types are immutable value objects. Their zero values are invalid and
// fail Validate; construct them through the provided factory functions.
package kernel
