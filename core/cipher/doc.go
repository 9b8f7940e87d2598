// Package cipher is the rotor machine: alphabet, fixed wiring tables, and the
// stepping Machine that turns one byte into another. It never imports the
// validator, app, server, or cli packages; keep it domain-only.
package cipher
