// Package order contains the Order aggregate root and its lifecycle value
// objects for the purchase domain.
//
// An Order records a user buying one or more courses. Its status moves from
// pending into the terminal states completed or cancelled, each of which
// implies a one-time timestamp. The derived total price is a snapshot of the
// referenced course prices, recomputed on every save by the domain services
// layer rather than stored as a live view.
//
// The aggregate deliberately does not block transitions between terminal
// states and provides no concurrency control across concurrent saves;
// both are documented design limits of this core.
package order
