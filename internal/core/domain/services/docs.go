// Package services contains the domain services that keep an order's derived
// state consistent whenever it is saved.
//
// Three services compose into one save flow:
//
//   - PricingCalculator derives the order total from the referenced courses'
//     current prices, resolved through the CatalogLookup port.
//   - NotificationTrigger decides, from how the order changed, whether the
//     save emits a customer-facing notification record.
//   - SavePipeline sequences lifecycle timestamping, price recomputation, and
//     the notification decision into the single transition every order
//     mutation passes through before it is committed.
//
// All collaborators are passed in explicitly; nothing in this package reaches
// for ambient registries or global state.
package services
