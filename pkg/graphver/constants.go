package graphver

// Exit codes for semantic error classification.
// These are the codes the legacy graph file version tool used, so scripts
// that wrap it keep working:
//   - 0: Success
//   - 1: CLI usage error
//   - 2+: Application-specific errors
const (
	ExitSuccess         = 0 // Version block printed
	ExitUsageError      = 1 // Wrong argument count or invalid flags
	ExitIOError         = 2 // File could not be opened, mapped or decoded
	ExitAnchorNotFound  = 3 // MavenVersion marker not present
	ExitExtractionError = 4 // Marker present but fields could not be extracted
	ExitConfigError     = 5 // Invalid configuration
	ExitPanic           = 6 // Internal panic (unexpected crash)
)

const (
	// DefaultMinStringLength is the default threshold for string runs: only
	// runs whose validated length is strictly greater than this are reported.
	DefaultMinStringLength = 2

	// DefaultAnchor is the class name OpenTripPlanner serializes right before
	// the build properties of the graph builder.
	DefaultAnchor = "org.opentripplanner.common.MavenVersion"

	// CommitHashLength is the number of hex digits in a full git commit hash.
	CommitHashLength = 40

	// DefaultMaxDecodedBytes caps the size of a decompressed graph file.
	DefaultMaxDecodedBytes int64 = 4 << 30

	// ConfigFileName is the project config looked up in the working directory.
	ConfigFileName = "graphver.yaml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "GRAPHVER_"
)

// Decompression modes accepted by the --decompress flag and config.
const (
	DecompressAuto = "auto"
	DecompressNone = "none"
	DecompressGzip = "gzip"
	DecompressZstd = "zstd"
)
