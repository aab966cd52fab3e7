package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all VCN console configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Generative service configuration
	Gemini GeminiConfig `yaml:"gemini"`

	// Image and video generation
	Studio StudioConfig `yaml:"studio"`

	// Live voice session
	Voice VoiceConfig `yaml:"voice"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig configures the generative service client.
type GeminiConfig struct {
	APIKey         string `yaml:"api_key"`
	AnalysisModel  string `yaml:"analysis_model"`
	ChatModel      string `yaml:"chat_model"`
	ThinkingModel  string `yaml:"thinking_model"`
	MapsModel      string `yaml:"maps_model"`
	ImageModel     string `yaml:"image_model"`
	EditModel      string `yaml:"edit_model"`
	VideoModel     string `yaml:"video_model"`
	LiveModel      string `yaml:"live_model"`
	Timeout        string `yaml:"timeout"`
	ThinkingBudget int32  `yaml:"thinking_budget"`

	// Optional location used for maps grounding. Absent = no location context.
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
}

// StudioConfig configures media generation.
type StudioConfig struct {
	OutputDir    string `yaml:"output_dir"`
	PollInterval string `yaml:"poll_interval"`
	ImageSize    string `yaml:"image_size"`   // 1K, 2K, 4K
	AspectRatio  string `yaml:"aspect_ratio"` // 1:1, 16:9, 9:16, ...
	VideoAspect  string `yaml:"video_aspect"` // 16:9 or 9:16
	VideoQuality string `yaml:"video_resolution"`
}

// VoiceConfig configures the live voice session and local audio devices.
type VoiceConfig struct {
	VoiceName         string   `yaml:"voice_name"`
	SystemInstruction string   `yaml:"system_instruction"`
	InputSampleRate   int      `yaml:"input_sample_rate"`
	OutputSampleRate  int      `yaml:"output_sample_rate"`
	FrameSamples      int      `yaml:"frame_samples"`
	CaptureCommand    []string `yaml:"capture_command"`
	PlaybackCommand   []string `yaml:"playback_command"`
}

// UIConfig configures the dashboard.
type UIConfig struct {
	Theme    string `yaml:"theme"` // auto, light, dark
	StartTab string `yaml:"start_tab"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "VCN Network",
		Version: "2.4.0",

		Gemini: GeminiConfig{
			AnalysisModel:  "gemini-3-flash-preview",
			ChatModel:      "gemini-3-flash-preview",
			ThinkingModel:  "gemini-3-pro-preview",
			MapsModel:      "gemini-2.5-flash",
			ImageModel:     "gemini-3-pro-image-preview",
			EditModel:      "gemini-2.5-flash-image",
			VideoModel:     "veo-3.1-fast-generate-preview",
			LiveModel:      "gemini-2.5-flash-native-audio-preview-09-2025",
			Timeout:        "120s",
			ThinkingBudget: 32768,
		},

		Studio: StudioConfig{
			OutputDir:    filepath.Join(".vcn", "media"),
			PollInterval: "10s",
			ImageSize:    "1K",
			AspectRatio:  "1:1",
			VideoAspect:  "16:9",
			VideoQuality: "720p",
		},

		Voice: VoiceConfig{
			VoiceName:         "Zephyr",
			SystemInstruction: "You are the VCN network concierge. Answer briefly and conversationally.",
			InputSampleRate:   16000,
			OutputSampleRate:  24000,
			FrameSamples:      4096,
			CaptureCommand:    []string{"arecord", "-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "raw"},
			PlaybackCommand:   []string{"aplay", "-q", "-f", "S16_LE", "-r", "24000", "-c", "1", "-t", "raw"},
		},

		UI: UIConfig{
			Theme:    "auto",
			StartTab: "dashboard",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the default path to .vcn/config.yaml under the workspace.
func DefaultConfigPath(workspace string) string {
	return filepath.Join(workspace, ".vcn", "config.yaml")
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadDotEnv loads a .env file from the workspace into the process environment.
// Variables already set in the environment win. A missing file is not an error.
func LoadDotEnv(workspace string) error {
	path := filepath.Join(workspace, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API_KEY is the legacy name; GEMINI_API_KEY wins when both are set.
	if key := os.Getenv("API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}

	if theme := os.Getenv("VCN_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if dir := os.Getenv("VCN_OUTPUT_DIR"); dir != "" {
		c.Studio.OutputDir = dir
	}
	if lvl := os.Getenv("VCN_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if os.Getenv("VCN_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}

	if lat, lng, ok := parseLocation(os.Getenv("VCN_LOCATION")); ok {
		c.Gemini.Latitude = &lat
		c.Gemini.Longitude = &lng
	}
}

// parseLocation parses "lat,lng".
func parseLocation(s string) (float64, float64, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// GetTimeout returns the per-request timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Gemini.Timeout)
	if err != nil || d <= 0 {
		return 120 * time.Second
	}
	return d
}

// GetPollInterval returns the video polling delay.
func (c *Config) GetPollInterval() time.Duration {
	d, err := time.ParseDuration(c.Studio.PollInterval)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// HasAPIKey reports whether a provider key is configured.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.Gemini.APIKey) != ""
}

// ValidImageSizes lists the supported image sizes.
var ValidImageSizes = []string{"1K", "2K", "4K"}

// ValidVideoAspects lists the aspect ratios supported for video.
var ValidVideoAspects = []string{"16:9", "9:16"}

// ValidThemes lists the accepted UI theme settings.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
// A missing API key is not an error: text paths degrade to fallbacks and
// media paths ask for a key interactively.
func (c *Config) Validate() error {
	var errs []error

	if !contains(ValidImageSizes, c.Studio.ImageSize) {
		errs = append(errs, fmt.Errorf("invalid image size: %s (valid: %v)", c.Studio.ImageSize, ValidImageSizes))
	}
	if !contains(ValidVideoAspects, c.Studio.VideoAspect) {
		errs = append(errs, fmt.Errorf("invalid video aspect: %s (valid: %v)", c.Studio.VideoAspect, ValidVideoAspects))
	}
	if !contains(ValidThemes, c.UI.Theme) {
		errs = append(errs, fmt.Errorf("invalid theme: %s (valid: %v)", c.UI.Theme, ValidThemes))
	}
	if c.Voice.InputSampleRate <= 0 || c.Voice.OutputSampleRate <= 0 {
		errs = append(errs, fmt.Errorf("voice sample rates must be positive"))
	}
	if c.Voice.FrameSamples <= 0 {
		errs = append(errs, fmt.Errorf("voice frame size must be positive"))
	}
	if (c.Gemini.Latitude == nil) != (c.Gemini.Longitude == nil) {
		errs = append(errs, fmt.Errorf("latitude and longitude must be set together"))
	}

	return errors.Join(errs...)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
