package builder

// Method names used to prefix wrapped errors.
const (
	methodBuildGraph      = "BuildGraph"
	methodGenerate        = "Generate"
	methodRandomConnected = "RandomConnected"
	methodScaleFree       = "ScaleFree"
	methodSmallWorld      = "SmallWorld"
	methodGrid            = "Grid"
	methodComplete        = "Complete"
	methodReweight        = "Reweight"
)

// Generation defaults.
const (
	// DefaultMinWeight and DefaultMaxWeight bound generated edge weights.
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 10

	// DefaultRewireProb is the small-world rewiring probability used by Generate.
	DefaultRewireProb = 0.3

	// extraEdgeAttemptFactor caps random-connected extra-edge attempts at factor*n.
	extraEdgeAttemptFactor = 10

	minGenerateVertices = 2
	minGridDim          = 1
	minSmallWorldDegree = 2
	minScaleFreeDegree  = 1

	minProbability = 0.0
	maxProbability = 1.0
)
