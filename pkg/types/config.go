package types

// Config represents the configuration for the calc-mcp server and REPL
type Config struct {
	LogLevel string `json:"log_level,omitempty" toml:"log_level"`
	LogFile  string `json:"log_file,omitempty" toml:"log_file"`
	Locale   string `json:"locale,omitempty" toml:"locale"`
}
