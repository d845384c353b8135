// Package config loads wavepath settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/wavepath/grid"
)

// ErrInvalidConfig wraps every validation or parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvGridSize = "WAVEPATH_GRID_SIZE"
	EnvStart    = "WAVEPATH_START"
	EnvFinish   = "WAVEPATH_FINISH"
	EnvDelay    = "WAVEPATH_DELAY"
	EnvLogLevel = "WAVEPATH_LOG_LEVEL"
	EnvHTTPAddr = "WAVEPATH_HTTP_ADDR"
	EnvGinMode  = "WAVEPATH_GIN_MODE"
)

// Config holds the application's configuration values.
type Config struct {
	GridSize int           // Side length of the square grid
	Start    grid.Cell     // Initial Start cell
	Finish   grid.Cell     // Initial Finish cell
	Delay    time.Duration // Pause after each BFS round
	LogLevel string        // debug, info, warn or error
	HTTPAddr string        // Listen address for the serve command
	GinMode  string        // Mode for the Gin framework (release, debug, test)
}

// Default returns a 16×16 grid from 0,0 to 15,15 with 100ms rounds.
func Default() Config {
	return Config{
		GridSize: 16,
		Start:    grid.Cell{X: 0, Y: 0},
		Finish:   grid.Cell{X: 15, Y: 15},
		Delay:    100 * time.Millisecond,
		LogLevel: "info",
		HTTPAddr: ":8080",
		GinMode:  "release",
	}
}

// ReconstructDelay is the pause after each reconstruction step.
func (c Config) ReconstructDelay() time.Duration {
	return c.Delay / 3
}

// Load reads the given .env files (default ".env"), missing files being
// ignored, then overlays environment variables on Default and validates.
// Variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: loading %s: %v", ErrInvalidConfig, f, err)
		}
	}

	cfg := Default()
	var err error
	if cfg.GridSize, err = getEnvAsInt(EnvGridSize, cfg.GridSize); err != nil {
		return Config{}, err
	}
	if cfg.Start, err = getEnvAsCell(EnvStart, cfg.Start); err != nil {
		return Config{}, err
	}
	if cfg.Finish, err = getEnvAsCell(EnvFinish, cfg.Finish); err != nil {
		return Config{}, err
	}
	if cfg.Delay, err = getEnvAsDuration(EnvDelay, cfg.Delay); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = getEnvWithDefault(EnvLogLevel, cfg.LogLevel)
	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, cfg.GinMode)

	return cfg, cfg.Validate()
}

// Validate checks sizes, coordinates, delay, log level and gin mode.
func (c Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d", ErrInvalidConfig, c.GridSize)
	}
	in := func(p grid.Cell) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < c.GridSize && p.Y < c.GridSize
	}
	if !in(c.Start) {
		return fmt.Errorf("%w: start %v outside %d×%d grid", ErrInvalidConfig, c.Start, c.GridSize, c.GridSize)
	}
	if !in(c.Finish) {
		return fmt.Errorf("%w: finish %v outside %d×%d grid", ErrInvalidConfig, c.Finish, c.GridSize, c.GridSize)
	}
	if c.Start == c.Finish {
		return fmt.Errorf("%w: start and finish are both %v", ErrInvalidConfig, c.Start)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: negative delay %v", ErrInvalidConfig, c.Delay)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: gin mode %q", ErrInvalidConfig, c.GinMode)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return v, nil
}

func getEnvAsCell(key string, defaultValue grid.Cell) (grid.Cell, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}
	c, err := grid.ParseCell(raw)
	if err != nil {
		return grid.Cell{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return c, nil
}

// getEnvAsDuration accepts Go durations ("150ms") or bare milliseconds ("150").
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalidConfig, key, err)
	}
	return d, nil
}
