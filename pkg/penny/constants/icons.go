package constants

// Icon names understood by the surface's DrawIcon. Each maps to an embedded
// SVG rasterized on first use.
const (
	IconBackspace = "backspace"
	IconCaps      = "caps"
	IconCheck     = "check"
	IconDone      = "done"
)
