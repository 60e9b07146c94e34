package bezier

// Sample table layout
const (
	sampleTableSize = 11                               // Entries in the seed table (t = 0, 0.1, ..., 1.0)
	sampleStepSize  = 1.0 / float64(sampleTableSize-1) // Parametric distance between entries
)

// Root-finding parameters
const (
	newtonIterations   = 4    // Maximum Newton-Raphson refinement steps
	newtonMinSlope     = 1e-3 // Below this slope Newton is unstable, fall back to subdivision
	subdivisionMaxIter = 10   // Maximum binary subdivision steps
	subdivisionEpsilon = 1e-7 // Residual |Bx(t) - x| accepted by subdivision
)

// Polynomial expansion factors
const (
	cubicFactor  = 3.0
	squareFactor = 2.0
	bFactor      = 6.0
	halfDivisor  = 2.0
)
