package order

// Change describes how an order being saved differs from its previously
// persisted state. It is the explicit input that drives lifecycle
// timestamping and notification decisions, replacing any implicit
// "was this field modified" tracking: the caller that loaded the previous
// snapshot states the facts, the pipeline acts on them.
type Change struct {
	// IsNew marks an order that has never been persisted.
	IsNew bool

	// StatusChanged marks a status that differs from the stored snapshot.
	// True on a first-time save: there is no stored snapshot, so whatever
	// status the order carries was just set.
	StatusChanged bool
}

// Creation is the change descriptor for a first-time save. It carries
// StatusChanged so an order created directly in a terminal status still
// receives its lifecycle timestamp.
func Creation() Change {
	return Change{IsNew: true, StatusChanged: true}
}

// ChangeSince computes the change descriptor for an existing order whose
// previously persisted status was previous.
func ChangeSince(previous Status, current Status) Change {
	return Change{StatusChanged: previous != current}
}
