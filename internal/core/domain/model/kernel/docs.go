// Package kernel provides core domain primitives for the shipping rates service.
// It implements the fundamental value objects shared by the rest of the
// domain model.
//
// The package includes:
//   - Weight: a mass with its unit, plus gram/kilogram/pound conversions
//   - Dimensions: parcel dimensions in centimetres with the default cube fallback
//   - Destination: a classified destination address (domestic, trading partner, international)
//   - Classifier: the configured origin market used to classify destinations
//   - UUID: a value object for unique identifiers (request correlation)
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
