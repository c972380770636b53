// Package polynomial implements the arithmetic shared by the sharing schemes:
// sampling a random polynomial with a fixed constant term, Horner evaluation
// over the scalar field, and Lagrange interpolation at an arbitrary point.
//
// All arithmetic is modular; there is no floating point anywhere. Interpolation
// rejects repeated evaluation points before any inversion takes place.
package polynomial
