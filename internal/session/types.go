package session

// State is the lifecycle stage of a query inside a session. Transitions are
// strictly forward per query: Idle -> Routing -> Invoking -> Validating ->
// Done, with any stage able to fall to Failed. The session returns to Idle
// before the next query.
type State string

const (
	StateIdle       State = "idle"
	StateRouting    State = "routing"
	StateInvoking   State = "invoking"
	StateValidating State = "validating"
	StateDone       State = "done"
	StateFailed     State = "failed"
)
