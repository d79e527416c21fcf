package enum

import "encoding/json"

// CheckoutState is the lifecycle state of one checkout transaction.
// Terminal states (Completed, Failed) are left by resetting the cart or, for
// Failed, by retrying the submission with the same locked order identifier.
type CheckoutState int

const (
	CheckoutEmpty      CheckoutState = 0 // no items, order id still regenerable
	CheckoutBuilding   CheckoutState = 1 // transient, between first add and lock
	CheckoutLocked     CheckoutState = 2 // items present, order id frozen
	CheckoutSubmitting CheckoutState = 3 // submission in flight
	CheckoutCompleted  CheckoutState = 4
	CheckoutFailed     CheckoutState = 5
)

func (s CheckoutState) String() string {
	names := [...]string{"empty", "building", "locked", "submitting", "completed", "failed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "empty"
	}
	return names[s]
}

func (s CheckoutState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
