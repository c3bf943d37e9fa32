// Package core contains the calendar's focus and navigation state machine.
//
// Allowed here:
// - base date and focus target resolution
// - keyboard focus movement across days, weeks and months
// - the Controller that owns the displayed month and focused date
// - key registries and the default calendar bindings
//
// Not allowed here:
// - rendering, styling or terminal I/O
// - persistence of committed values
package core
