// Package services provides domain services that implement business logic
// spanning more than one value of the order model.
//
// The package includes:
//   - PricingCalculator: a pure calculator producing the itemized quote an
//     order is priced and frozen with at creation time
//
// Domain services hold no state of their own and depend only on the domain
// model, following Domain-Driven Design principles.
package services
