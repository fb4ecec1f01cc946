// Package driving defines interfaces that external actors (CLI, TUI, MCP) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Callers are assumed to be authorised administrators; the ports do not
// perform access control.
//
// Implementations of these interfaces live in internal/core/services.
package driving
