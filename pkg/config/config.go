package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "SPENDMAP"
	envConfig = "SPENDMAP_CONFIG"
)

// Config holds application configuration.
type Config struct {
	// Dir is where statement exports are looked for.
	Dir string `mapstructure:"dir"`

	CategoriesFile string `mapstructure:"categories_file"`
	MappingFile    string `mapstructure:"mapping_file"`

	// Report is the summary workbook, merged into on every run.
	Report string `mapstructure:"report"`

	// Archive optionally keeps every classified transaction, as
	// "jsonfile:<path>" or "sqlite:<path>".
	Archive string `mapstructure:"archive"`

	// DefaultCategory is what batch runs file unknown businesses under.
	DefaultCategory string `mapstructure:"default_category"`

	SkipRows int `mapstructure:"skip_rows"`

	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// LoadEnvFile loads .env files (default ".env") into the environment.
// Errors are ignored, the files are optional.
func LoadEnvFile(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads configuration from file and env. Env vars use the prefix
// SPENDMAP_, eg. SPENDMAP_LOG_LEVEL. If path is empty SPENDMAP_CONFIG is
// used, then ./spendmap.toml if it exists.
func Load(path string) (*Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("dir", ".")
	v.SetDefault("categories_file", "categories.json")
	v.SetDefault("mapping_file", "categories_mapping.json")
	v.SetDefault("report", "summary.xlsx")
	v.SetDefault("archive", "")
	v.SetDefault("default_category", "unknown")
	v.SetDefault("skip_rows", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("spendmap")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// a file asked for by name has to exist
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks the configuration, reporting every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Dir == "" {
		problems = append(problems, "statement directory cannot be empty")
	}

	if c.CategoriesFile == "" {
		problems = append(problems, "categories file cannot be empty")
	}
	if c.MappingFile == "" {
		problems = append(problems, "mapping file cannot be empty")
	}
	if c.CategoriesFile != "" && filepath.Clean(c.CategoriesFile) == filepath.Clean(c.MappingFile) {
		problems = append(problems, fmt.Sprintf("categories and mapping files must differ, both are '%s'", c.CategoriesFile))
	}

	if c.Report == "" {
		problems = append(problems, "report path cannot be empty")
	} else if !strings.EqualFold(filepath.Ext(c.Report), ".xlsx") {
		problems = append(problems, fmt.Sprintf("invalid report '%s': must be an .xlsx file", c.Report))
	}

	if c.Archive != "" {
		kind, target, ok := strings.Cut(c.Archive, ":")
		if !ok || target == "" || (kind != "jsonfile" && kind != "sqlite") {
			problems = append(problems, fmt.Sprintf("invalid archive '%s': must be jsonfile:<path> or sqlite:<path>", c.Archive))
		}
	}

	if strings.TrimSpace(c.DefaultCategory) == "" {
		problems = append(problems, "default category cannot be empty")
	}

	if c.SkipRows < 0 {
		problems = append(problems, fmt.Sprintf("invalid skip_rows %d: cannot be negative", c.SkipRows))
	}

	validLevels := []string{"debug", "info", "warn", "error", "disabled"}
	isValidLevel := false
	for _, level := range validLevels {
		if strings.EqualFold(c.Log.Level, level) {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of %v", c.Log.Level, validLevels))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
