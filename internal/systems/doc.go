// Package systems is a catalog of planar vector fields with known
// equilibria, addressable by name through [Registry].
package systems
