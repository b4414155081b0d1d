// Package scenario holds the in-memory model of a lab topology: the
// networks, the systems attached to them, and the address leasing that
// wires the two together.
//
// A [Scenario] is built once from a decoded configuration document and
// validated at construction. Wiring is a separate explicit step so a
// caller can inspect the unwired model before committing to address
// allocation.
package scenario
