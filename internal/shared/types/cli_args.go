package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	DataDir    string
	Dir        string
	ReportName string
	ReportType []string
	DBPath     string
	Trend      bool
}
