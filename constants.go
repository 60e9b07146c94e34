package easing

// CSS keyword control points
const (
	easeX1    = 0.25
	easeY1    = 0.1
	easeX2    = 0.25
	easeInX1  = 0.42
	easeOutX2 = 0.58
)

// Curve parsing
const (
	cssFunctionPrefix  = "cubic-bezier("
	controlCoordinates = 4
)

// Animation parameters
const (
	// relativeDistanceUnit is the distance covered in Animation.Duration
	// when Animation.Relative is set.
	relativeDistanceUnit = 1000.0
)

// Sampling limits
const (
	minSamples     = 2 // Sample grids include both end points
	pointDimension = 2 // Interleaved (x, y) pairs
)
