package config

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"runtime"
	"time"

	"github.com/zeebo/errs"
)

const DefaultFile = "parseint.json"

const (
	FormatText = "text"
	FormatJSON = "json"
)

var configErr = errs.Class("config")

type Config struct {
	Workers int    `json:"workers"`
	Format  string `json:"format"`
	Cache   Cache  `json:"cache"`
}

type Cache struct {
	Enabled         bool     `json:"enabled"`
	Expiration      Duration `json:"expiration"`
	CleanupInterval Duration `json:"cleanup_interval"`
}

// Duration reads durations written as strings such as "90s" or "5m".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(v)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func Default() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Format:  FormatText,
		Cache: Cache{
			Enabled:         false,
			Expiration:      Duration(5 * time.Minute),
			CleanupInterval: Duration(1 * time.Minute),
		},
	}
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return configErr.New("workers:%d must not be negative", c.Workers)
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return configErr.New("unknown format %q", c.Format)
	}

	if c.Cache.Expiration < 0 || c.Cache.CleanupInterval < 0 {
		return configErr.New("cache durations must not be negative")
	}

	return nil
}

// Read decodes a config from r on top of the defaults.
func Read(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, configErr.Wrap(err)
	}

	config := Default()
	if err := json.Unmarshal(raw, &config); err != nil {
		return Config{}, configErr.Wrap(err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Load reads the config file at path. When optional is set a missing file
// yields the defaults.
func Load(path string, optional bool) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, configErr.Wrap(err)
	}
	defer f.Close()

	return Read(f)
}
