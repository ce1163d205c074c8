package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by [Config.ApplyEnv].
const EnvPrefix = "PICNAMER_"

// fileConfig mirrors the YAML config file. Pointer fields distinguish an
// absent key from an explicit zero value.
type fileConfig struct {
	PhotoFolder       *string  `yaml:"photo_folder"`
	OutputFolder      *string  `yaml:"output_folder"`
	NamesFile         *string  `yaml:"names_file"`
	GroupsFile        *string  `yaml:"groups_file"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
	Verbose           *bool    `yaml:"verbose"`
	Color             *string  `yaml:"color"`
	LogFile           *string  `yaml:"log_file"`
}

// ApplyFile reads a YAML configuration file and overrides the keys it sets.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&c.PhotoFolder, fc.PhotoFolder)
	setString(&c.OutputFolder, fc.OutputFolder)
	setString(&c.NamesFile, fc.NamesFile)
	setString(&c.GroupsFile, fc.GroupsFile)
	setString(&c.LogFile, fc.LogFile)
	if fc.AllowedExtensions != nil {
		c.AllowedExtensions = NormalizeExtensions(fc.AllowedExtensions)
	}
	if fc.Verbose != nil {
		c.Verbose = *fc.Verbose
	}
	if fc.Color != nil {
		c.ColorMode = ColorMode(strings.ToLower(*fc.Color))
	}
	return nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// An empty path loads ./.env when present and is silent when it is not; an
// explicit path must exist. Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from PICNAMER_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := lookupEnv("PHOTO_FOLDER"); ok {
		c.PhotoFolder = NormalizeDirArg(v)
	}
	if v, ok := lookupEnv("OUTPUT_FOLDER"); ok {
		c.OutputFolder = NormalizeDirArg(v)
	}
	if v, ok := lookupEnv("NAMES_FILE"); ok {
		c.NamesFile = v
	}
	if v, ok := lookupEnv("GROUPS_FILE"); ok {
		c.GroupsFile = v
	}
	if v, ok := lookupEnv("ALLOWED_EXTENSIONS"); ok {
		c.AllowedExtensions = ParseExtensionList(v)
	}
	if v, ok := lookupEnv("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookupEnv("COLOR"); ok {
		c.ColorMode = ColorMode(strings.ToLower(v))
	}
	if v, ok := lookupEnv("VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sVERBOSE must be a boolean (got %q)", EnvPrefix, v)
		}
		c.Verbose = b
	}
	return nil
}

// lookupEnv returns the trimmed value of PICNAMER_<key>; blank counts as unset.
func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
