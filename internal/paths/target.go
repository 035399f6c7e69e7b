package paths

// Target is a logical file the resolver knows how to find.
type Target int

const (
	Solution Target = iota
	DataProject
	WebProject
	CLIAssembly
)

func (t Target) String() string {
	switch t {
	case Solution:
		return "solution"
	case DataProject:
		return "data project"
	case WebProject:
		return "web project"
	case CLIAssembly:
		return "cli assembly"
	default:
		return "unknown target"
	}
}

// Targets lists every target in display order.
var Targets = []Target{Solution, DataProject, WebProject, CLIAssembly}

// DefaultPatterns holds the search cascade per target, ordered from the most
// specific (cheapest) pattern to the most general one.
var DefaultPatterns = map[Target][]string{
	Solution: {
		"*.sln",
		"dotnet/*.sln",
		"**/*.sln",
	},
	DataProject: {
		"dotnet/*/*.Data.csproj",
		"**/*.Data.csproj",
	},
	WebProject: {
		"dotnet/*/*.Web.csproj",
		"**/*.Web.csproj",
	},
	CLIAssembly: {
		"dotnet/*/bin/Debug/*/*.Cli.dll",
		"**/bin/Debug/**/*.Cli.dll",
		"**/*.Cli.dll",
	},
}

// ReleaseDirName is appended to the solution directory for publish output.
const ReleaseDirName = "release"
