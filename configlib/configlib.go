// Package configlib loads word count settings. WORDCOUNT_* environment variables override
// wordcount.yaml, which overrides the built-in defaults
package configlib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"goWordCount/freqtablelib"
	"goWordCount/stringlib"
)

// HTML modes. HTMLAuto converts .html/.htm inputs to text, HTMLOn converts every input.
// The default, HTMLOff, counts the raw file.
const (
	HTMLAuto = "auto"
	HTMLOn   = "true"
	HTMLOff  = "false"
)

// Config holds every tunable of a word count run
type Config struct {
	InitialTableSize int
	MaxListSize      int

	Stem        bool
	DropNumeric bool
	Stopwords   []string

	HTML           string
	LinksOutput    string
	EntitiesOutput string
	RankedOutput   string
	Baseline       string
	Backup         bool

	LogLevel string
	Debug    bool
}

// Default returns the built-in configuration, ignoring files and environment
func Default() Config {
	c, err := decode(newViper())
	if err != nil {
		// defaults are static and always decode
		panic(err)
	}
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("initialTableSize", freqtablelib.DefaultInitialSize)
	v.SetDefault("maxListSize", freqtablelib.DefaultMaxListSize)
	v.SetDefault("stem", false)
	v.SetDefault("dropNumeric", false)
	v.SetDefault("stopwords", "")
	v.SetDefault("html", HTMLOff)
	v.SetDefault("linksOutput", "")
	v.SetDefault("entitiesOutput", "")
	v.SetDefault("rankedOutput", "")
	v.SetDefault("baseline", "")
	v.SetDefault("backup", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("debug", false)

	return v
}

// Load reads the configuration. With an empty path, wordcount.yaml is searched in
// the working directory and its absence is not an error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetEnvPrefix("wordcount")
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wordcount") // name of config file (without extension)
		v.AddConfigPath(".")         // look for config in the working directory
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	c := Config{
		InitialTableSize: v.GetInt("initialTableSize"),
		MaxListSize:      v.GetInt("maxListSize"),
		Stem:             v.GetBool("stem"),
		DropNumeric:      v.GetBool("dropNumeric"),
		Stopwords:        stopwords(v),
		HTML:             strings.ToLower(v.GetString("html")),
		LinksOutput:      v.GetString("linksOutput"),
		EntitiesOutput:   v.GetString("entitiesOutput"),
		RankedOutput:     v.GetString("rankedOutput"),
		Baseline:         v.GetString("baseline"),
		Backup:           v.GetBool("backup"),
		LogLevel:         v.GetString("logLevel"),
		Debug:            v.GetBool("debug"),
	}

	if c.InitialTableSize < 1 {
		return c, fmt.Errorf("initialTableSize must be positive, got %d", c.InitialTableSize)
	}
	if c.MaxListSize < 1 {
		return c, fmt.Errorf("maxListSize must be positive, got %d", c.MaxListSize)
	}
	switch c.HTML {
	case HTMLAuto, HTMLOn, HTMLOff:
	default:
		return c, fmt.Errorf("html must be auto, true or false, got %q", c.HTML)
	}

	return c, nil
}

// stopwords accepts either a YAML list or the crawler style `|` separated string
func stopwords(v *viper.Viper) []string {
	if _, ok := v.Get("stopwords").([]interface{}); ok {
		return v.GetStringSlice("stopwords")
	}
	return stringlib.SplitList(v.GetString("stopwords"))
}
