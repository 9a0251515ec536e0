package ui

import "sync"

// ConfirmGate bridges the widget's blocking confirmation to the TUI's
// asynchronous key handling. The TUI shows its own yes/no modal, arms the
// gate when the user answers yes, then dispatches the delete. Each arm
// answers exactly one Confirm call.
type ConfirmGate struct {
	mu     sync.Mutex
	armed  bool
	prompt string
}

// Confirm answers yes only if the gate was armed, and disarms it.
func (g *ConfirmGate) Confirm(prompt string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompt = prompt
	ok := g.armed
	g.armed = false
	return ok
}

// Arm makes the next Confirm answer yes.
func (g *ConfirmGate) Arm() {
	g.mu.Lock()
	g.armed = true
	g.mu.Unlock()
}

// Disarm makes the next Confirm answer no.
func (g *ConfirmGate) Disarm() {
	g.mu.Lock()
	g.armed = false
	g.mu.Unlock()
}

// LastPrompt returns the prompt of the most recent Confirm call.
func (g *ConfirmGate) LastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.prompt
}
