// Package config handles objtool configuration loading.
package config

// Config holds all objtool settings.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig holds OBJ parsing settings.
type ParserConfig struct {
	// Locale is the BCP-47 tag selecting the decimal separator used by
	// numeral tokens in the input files.
	Locale string `yaml:"locale"`
}

// OutputConfig holds report formatting settings.
type OutputConfig struct {
	// ShowEmptyGroups includes groups without elements in group listings.
	ShowEmptyGroups bool `yaml:"show_empty_groups"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			Locale: "en",
		},
		Output: OutputConfig{
			ShowEmptyGroups: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
