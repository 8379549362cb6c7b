package config

// Flags carries the global command-line options. Zero values mean "not set";
// boolean flags can only switch a setting on.
type Flags struct {
	ConfigPath      string
	CredentialsFile string
	Verbose         bool
	DryRun          bool
	Overwrite       bool
}

// ApplyFlags overrides config values with explicitly set flags.
func (c *Config) ApplyFlags(f Flags) {
	if f.CredentialsFile != "" {
		c.CredentialsFile = f.CredentialsFile
	}
	if f.Verbose {
		c.Verbose = true
	}
	if f.DryRun {
		c.DryRun = true
	}
	if f.Overwrite {
		c.Overwrite = true
	}
}
