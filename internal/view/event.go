package view

import "context"

// Event types the widget dispatches.
const (
	EventClick  = "click"
	EventInput  = "input"
	EventSubmit = "submit"
)

// Listener handles an event dispatched on a node.
type Listener func(*Event)

// Event is dispatched to the listeners of a single node. Events do not
// bubble; the widget attaches listeners to the exact node it cares about.
type Event struct {
	Type   string
	Target *Node

	// Detail carries a handler's result back to whoever dispatched.
	Detail any

	ctx              context.Context
	defaultPrevented bool
	err              error
}

// NewEvent creates an event of the given type bound to ctx.
func NewEvent(ctx context.Context, typ string) *Event {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Event{Type: typ, ctx: ctx}
}

// Context returns the context the event was dispatched with.
func (e *Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Fail records an error raised while handling the event. The first error wins.
func (e *Event) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Err returns the first error a listener recorded.
func (e *Event) Err() error {
	return e.err
}

// AddEventListener registers fn for events of the given type.
func (n *Node) AddEventListener(typ string, fn Listener) {
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	n.listeners[typ] = append(n.listeners[typ], fn)
}

// Dispatch runs the node's listeners for ev.Type in registration order and
// returns ev for inspection.
func (n *Node) Dispatch(ev *Event) *Event {
	ev.Target = n
	for _, fn := range n.listeners[ev.Type] {
		fn(ev)
	}
	return ev
}

// Click dispatches a click event. Disabled nodes ignore clicks.
func (n *Node) Click(ctx context.Context) *Event {
	ev := NewEvent(ctx, EventClick)
	if n.Disabled() {
		ev.Target = n
		return ev
	}
	return n.Dispatch(ev)
}
