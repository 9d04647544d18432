// Package integrators numerically integrates planar ODE initial value
// problems on a fixed evaluation schedule.
//
// [SolveIVP] drives an adaptive Dormand-Prince [RK45] stepper from one
// schedule point to the next, clamping the final sub-step so every
// requested sample is landed on exactly. Descending schedules integrate
// in reverse time with negative steps.
package integrators
