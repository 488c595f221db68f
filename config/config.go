package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/wojtekolesinski/seabattle/board"
)

const (
	UIConsole = "console"
	UIGUI     = "gui"

	// MaxGUISize is the largest board the terminal GUI can draw.
	MaxGUISize = 10
)

// Config holds the game settings
type Config struct {
	Size         int    `yaml:"size"`
	Fleet        []int  `yaml:"fleet"`
	MaxAttempts  int    `yaml:"max_attempts"`
	Seed         int64  `yaml:"seed"`
	UI           string `yaml:"ui"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	PlayerName   string `yaml:"player_name"`
	OpponentName string `yaml:"opponent_name"`
	BannerWidth  uint   `yaml:"banner_width"`
}

func Default() *Config {
	fleet := make([]int, len(board.DefaultFleet))
	copy(fleet, board.DefaultFleet)
	return &Config{
		Size:         board.DefaultSize,
		Fleet:        fleet,
		MaxAttempts:  board.DefaultMaxAttempts,
		UI:           UIConsole,
		LogLevel:     "info",
		PlayerName:   "Player",
		OpponentName: "Computer",
		BannerWidth:  40,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if len(c.Fleet) == 0 {
		return errors.New("fleet cannot be empty")
	}

	cells, blocks := 0, 0
	for _, l := range c.Fleet {
		if l < board.MinVesselLength || l > board.MaxVesselLength {
			return fmt.Errorf("vessel length must be between %d and %d, got %d", board.MinVesselLength, board.MaxVesselLength, l)
		}
		if l > c.Size {
			return fmt.Errorf("vessel of length %d does not fit a %dx%d board", l, c.Size, c.Size)
		}
		cells += l
		blocks += 2 * (l + 1)
	}
	// Fleets failing these checks can never be placed and generation would
	// retry forever. A vessel together with the water below and to the right
	// of it covers a 2x(l+1) block of the board grown by one row and column.
	if cells > c.Size*c.Size {
		return fmt.Errorf("fleet needs %d cells, board has %d", cells, c.Size*c.Size)
	}
	if blocks > (c.Size+1)*(c.Size+1) {
		return fmt.Errorf("fleet of %d vessels cannot be kept apart on a %dx%d board", len(c.Fleet), c.Size, c.Size)
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be positive, got %d", c.MaxAttempts)
	}

	switch c.UI {
	case UIConsole:
	case UIGUI:
		if c.Size > MaxGUISize {
			return fmt.Errorf("gui supports boards up to %d, got %d", MaxGUISize, c.Size)
		}
	default:
		return fmt.Errorf("unknown ui %q", c.UI)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.PlayerName == "" || c.OpponentName == "" {
		return errors.New("player_name and opponent_name cannot be empty")
	}
	if c.BannerWidth == 0 {
		return errors.New("banner_width must be positive")
	}
	return nil
}
