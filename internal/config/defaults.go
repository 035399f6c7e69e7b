package config

const (
	// DefaultWorkDir is the directory path resolution starts from
	DefaultWorkDir = "."
	// DefaultDotnetPath is the toolchain executable
	DefaultDotnetPath = "dotnet"
	// DefaultTestProjectPattern matches test project file names
	DefaultTestProjectPattern = "*.Test*.csproj"
	// DefaultCoverageFormat is passed to the coverage collector
	DefaultCoverageFormat = "opencover"
	// DefaultResultsFile is the file name of the stored per-project run
	DefaultResultsFile = "test-results.json"
	// DefaultResultsDir is the directory holding stored runs, relative to the work dir
	DefaultResultsDir = ".dotpipe"
	// ConfigFileName is the optional YAML config file looked up in the work dir
	ConfigFileName = ".dotpipe"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "DOTPIPE"
)

// DefaultPathsToIgnore are version-control metadata and dependency-cache directories
// that path resolution, test discovery and cleaning never descend into.
var DefaultPathsToIgnore = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	".nuget",
}

// DefaultIntermediateDirs are the build-intermediate directory names removed when cleaning.
var DefaultIntermediateDirs = []string{
	"bin",
	"obj",
}
