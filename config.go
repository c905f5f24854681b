package rexgen

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var DefaultProfilePath = filepath.Join(getUserHomeDir(), ".config/rexgen/profile.yaml")

// DefaultConfig is the option profile applied by the CLI when the user does
// not pass one explicitly. It may be replaced at startup from the profile
// file on disk.
var DefaultConfig Config

// Config is the on-disk YAML form of the option bundle.
type Config struct {
	ConversionOfDigits        bool `yaml:"conversion_of_digits"`
	ConversionOfNonDigits     bool `yaml:"conversion_of_non_digits"`
	ConversionOfWhitespace    bool `yaml:"conversion_of_whitespace"`
	ConversionOfNonWhitespace bool `yaml:"conversion_of_non_whitespace"`
	ConversionOfWords         bool `yaml:"conversion_of_words"`
	ConversionOfNonWords      bool `yaml:"conversion_of_non_words"`
	ConversionOfRepetitions   bool `yaml:"conversion_of_repetitions"`
	MinimumRepetitions        int  `yaml:"minimum_repetitions"`
	MinimumSubstringLength    int  `yaml:"minimum_substring_length"`
	CapturingGroups           bool `yaml:"capturing_groups"`
	WithoutAnchors            bool `yaml:"without_anchors"`
	CaseInsensitiveMatching   bool `yaml:"case_insensitive_matching"`
	VerboseMode               bool `yaml:"verbose_mode"`
	EscapeNonASCII            bool `yaml:"escape_non_ascii"`
	UseSurrogatePairs         bool `yaml:"use_surrogate_pairs"`
}

// NewConfig reads an option profile from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options expands the profile into an option bundle for the given examples.
func (c *Config) Options(examples []string) *Options {
	return &Options{
		Examples:                  examples,
		ConversionOfDigits:        c.ConversionOfDigits,
		ConversionOfNonDigits:     c.ConversionOfNonDigits,
		ConversionOfWhitespace:    c.ConversionOfWhitespace,
		ConversionOfNonWhitespace: c.ConversionOfNonWhitespace,
		ConversionOfWords:         c.ConversionOfWords,
		ConversionOfNonWords:      c.ConversionOfNonWords,
		ConversionOfRepetitions:   c.ConversionOfRepetitions,
		MinimumRepetitions:        c.MinimumRepetitions,
		MinimumSubstringLength:    c.MinimumSubstringLength,
		CapturingGroups:           c.CapturingGroups,
		WithoutAnchors:            c.WithoutAnchors,
		CaseInsensitiveMatching:   c.CaseInsensitiveMatching,
		VerboseMode:               c.VerboseMode,
		EscapeNonASCII:            c.EscapeNonASCII,
		UseSurrogatePairs:         c.UseSurrogatePairs,
	}
}

// GenerateSample creates a sample yaml profile with default values
func GenerateSample(filePath string) error {
	cfg := Config{
		MinimumRepetitions:     1,
		MinimumSubstringLength: 1,
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
