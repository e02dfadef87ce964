package gppc

import "errors"

// Sentinel errors for map/scenario parsing.
var (
	// ErrMalformedHeader indicates a .map file's four-line header ("type
	// octile", "height H", "width W", "map") doesn't match that exact
	// shape.
	ErrMalformedHeader = errors.New("gppc: malformed map header")
	// ErrRowCount indicates a .map file has fewer or more terrain rows
	// than its header's declared height.
	ErrRowCount = errors.New("gppc: map row count does not match declared height")
	// ErrRowWidth indicates a .map terrain row's length doesn't match the
	// header's declared width.
	ErrRowWidth = errors.New("gppc: map row width does not match declared width")
	// ErrScenarioRow indicates a .map.scen row has a field count that
	// matches neither the v0 nor v1 layout.
	ErrScenarioRow = errors.New("gppc: unrecognised scenario row layout")
)
