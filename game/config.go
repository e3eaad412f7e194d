package game

import (
	_ "embed"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed config.yaml
var defaultConfig []byte

type Labels struct {
	Title      string `yaml:"title"`
	PickSize   string `yaml:"pick_size"`
	SizeOption string `yaml:"size_option"`
	Start      string `yaml:"start"`
	Status     string `yaml:"status"`
	Complete   string `yaml:"complete"`
	NewGame    string `yaml:"new_game"`
	Abandon    string `yaml:"abandon"`
}

type GameConfig struct {
	// Board sizes offered when starting a game
	Sizes []int `yaml:"sizes"`
	// Fill odd grids with a pre-matched wildcard tile instead of rejecting them
	Wildcard bool `yaml:"wildcard"`

	Labels Labels `yaml:"labels"`
}

// NewGameConfig returns the built-in configuration
func NewGameConfig() GameConfig {
	config, err := LoadGameConfig(defaultConfig)
	if err != nil {
		panic(err)
	}
	return config
}

func LoadGameConfig(in []byte) (GameConfig, error) {
	var config GameConfig
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return GameConfig{}, errors.Wrap(err, "decoding game config")
	}
	if err := config.Validate(); err != nil {
		return GameConfig{}, err
	}
	return config, nil
}

func (config GameConfig) Validate() error {
	if len(config.Sizes) == 0 {
		return errors.New("no board sizes configured")
	}
	for _, size := range config.Sizes {
		if err := config.BoardConfig(size, 0).Validate(); err != nil {
			return errors.Wrap(err, "invalid board size")
		}
	}
	return nil
}

func (config GameConfig) BoardConfig(size int, seed int64) BoardConfig {
	return BoardConfig{
		Size:     size,
		Wildcard: config.Wildcard,
		Seed:     seed,
	}
}

func (config GameConfig) HasSize(size int) bool {
	for _, s := range config.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (labels Labels) StatusLine(status Status) string {
	return fmt.Sprintf(labels.Status, status.PairsFound, status.Attempts)
}

func (labels Labels) CompleteNotice(attempts int) string {
	return fmt.Sprintf(labels.Complete, attempts)
}

func (labels Labels) SizeLabel(size int) string {
	return fmt.Sprintf(labels.SizeOption, size, size)
}
