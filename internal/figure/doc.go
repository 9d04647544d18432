// Package figure renders phase portraits to vector graphics via
// gonum/plot: trajectory curves, direction arrows, equilibrium markers,
// and numbered PDF persistence that never overwrites a prior output.
package figure
