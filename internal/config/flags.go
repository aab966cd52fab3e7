package config

import "github.com/spf13/pflag"

// FlagOverrides holds command-line values that take precedence over the file and env.
type FlagOverrides struct {
	APIKey    string
	Theme     string
	OutputDir string
	LogLevel  string
	Debug     bool
}

// RegisterFlags registers the config override flags on fs.
func RegisterFlags(fs *pflag.FlagSet) *FlagOverrides {
	o := &FlagOverrides{}
	fs.StringVar(&o.APIKey, "api-key", "", "Generative API key (overrides GEMINI_API_KEY)")
	fs.StringVar(&o.Theme, "theme", "", "UI theme: auto, light, dark")
	fs.StringVar(&o.OutputDir, "output-dir", "", "Directory for generated media")
	fs.StringVar(&o.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&o.Debug, "debug", false, "Enable categorized debug logs under .vcn/logs")
	return o
}

// Apply copies every flag the user actually set onto cfg.
func (o *FlagOverrides) Apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("api-key") {
		cfg.Gemini.APIKey = o.APIKey
	}
	if fs.Changed("theme") {
		cfg.UI.Theme = o.Theme
	}
	if fs.Changed("output-dir") {
		cfg.Studio.OutputDir = o.OutputDir
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = o.LogLevel
	}
	if fs.Changed("debug") {
		cfg.Logging.DebugMode = o.Debug
	}
}
