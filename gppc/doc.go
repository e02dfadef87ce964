// Package gppc loads Grid-based Path Planning Competition map and
// scenario files: a ".map" describes one grid's passable terrain, a
// ".map.scen" lists start/goal/optimal-length rows to benchmark solvers
// against. Both loaders are streaming, line-oriented readers built on
// bufio/strconv — no parser-combinator library in the corpus fits a
// format this small and line-shaped better than the standard library
// does (see DESIGN.md).
package gppc
