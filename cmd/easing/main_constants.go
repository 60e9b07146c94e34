package main

// Default command-line flag values
const (
	defaultCurve = "ease"
	defaultSteps = 10
)

// Step limits
const (
	minSteps = 1
	maxSteps = 1000
)

// Plot layout
const (
	plotWidth    = 40  // Characters for the [0, 1] output range
	plotMargin   = 0.2 // Extra room either side of [0, 1] for overshoot
	plotMarker   = '*'
	plotAxisChar = '|'
)

// Demo animation
const (
	demoDistance     = 1200.0 // Pixels scrolled in the demo
	demoDurationMs   = 400    // Demo animation duration in milliseconds
	demoFrameMs      = 50     // Demo frame interval in milliseconds
	demoRelativeMs   = 300    // Demo relative duration per 1000 pixels
	demoRelativeDist = 2500.0 // Pixels scrolled in the relative demo
)
