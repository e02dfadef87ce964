// Package solver is the generic façade every algorithm kernel is invoked
// through: endpoint validation, the start==end shortcut, capacity
// estimation for reserving closed/open sets, path reconstruction, and
// deferred pool cleanup that attempts every reset and joins their errors.
//
// The kernels themselves live in the solver/uninformed, solver/astarfam,
// solver/graveyard, solver/iterdeep, and solver/bounded sub-packages —
// one coarser-grained package per algorithm family rather than one
// package per algorithm, to keep the twenty-odd named algorithms
// navigable while still following the teacher's "one package per
// algorithm-shaped concern" layout.
package solver
