package orders

// Status is the lifecycle state of a repair order.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusReceived  Status = "RECEIVED"
	StatusInspected Status = "INSPECTED"
	StatusRepairing Status = "REPAIRING"
	StatusReady     Status = "READY"
	StatusShipped   Status = "SHIPPED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusOnHold    Status = "ON_HOLD"
)

// transitions is the single source of truth for legal status edges. Both
// validation and the admin UI's next-step listing read from it, so the two
// can't drift apart. No entry means no outgoing edges.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusSubmitted, StatusCancelled},
	StatusSubmitted: {StatusReceived, StatusCancelled, StatusOnHold},
	StatusReceived:  {StatusInspected, StatusCancelled, StatusOnHold},
	StatusInspected: {StatusRepairing, StatusCancelled, StatusOnHold},
	StatusRepairing: {StatusReady, StatusCancelled, StatusOnHold},
	StatusReady:     {StatusShipped, StatusOnHold},
	StatusShipped:   {StatusCompleted},
	StatusOnHold:    {StatusReceived, StatusInspected, StatusRepairing, StatusCancelled},
}

// statusLabels are the customer-facing German names used in emails and on
// the admin console.
var statusLabels = map[Status]string{
	StatusDraft:     "Entwurf",
	StatusSubmitted: "Eingereicht",
	StatusReceived:  "Eingetroffen",
	StatusInspected: "Begutachtet",
	StatusRepairing: "In Reparatur",
	StatusReady:     "Fertig",
	StatusShipped:   "Versendet",
	StatusCompleted: "Abgeschlossen",
	StatusCancelled: "Storniert",
	StatusOnHold:    "Wartend (Rückfrage)",
}

// notifyStatuses are the targets that trigger a customer email: the
// informative mid-lifecycle states, never the initial or terminal ones.
var notifyStatuses = map[Status]bool{
	StatusReceived:  true,
	StatusInspected: true,
	StatusRepairing: true,
	StatusReady:     true,
	StatusShipped:   true,
	StatusOnHold:    true,
}

// ParseStatus validates a raw status value.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	if _, ok := statusLabels[st]; !ok {
		return "", false
	}
	return st, true
}

func (s Status) Label() string { return statusLabels[s] }

// CanTransition reports whether to is reachable from s in one step.
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the legally reachable targets, for enumeration in
// the admin console. Terminal states return nil.
func (s Status) NextStatuses() []Status {
	next := transitions[s]
	if len(next) == 0 {
		return nil
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// Terminal states accept no further transitions.
func (s Status) Terminal() bool { return len(transitions[s]) == 0 }

// Editable reports whether order data may still be changed by staff.
func (s Status) Editable() bool {
	return s != StatusCompleted && s != StatusCancelled
}

// NotifiesCustomer reports whether entering s dispatches a status email.
func (s Status) NotifiesCustomer() bool { return notifyStatuses[s] }
