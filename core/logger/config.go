package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding, either console or json.
	Format string `mapstructure:"format" default:"console"`
	// Output is the zap sink the logs are written to.
	Output string `mapstructure:"output" default:"stdout"`
}
