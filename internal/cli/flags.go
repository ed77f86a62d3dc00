package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile     string
	CheckAccent bool
	BatchFile   string
	Trace       bool
	Examples    bool
	Workers     int
	LogLevel    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel: "warn",
	}
}
