// Package config loads the engine's tunable parameters from a YAML file:
// MCTS exploration constant and time budget, negamax search depth, and
// the PRNG seed used for reproducible bot behavior in tests.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Engine holds every tunable the bot binaries expose. Zero values are
// not valid configuration; callers should start from Default and
// override only what they need.
type Engine struct {
	MCTS struct {
		// ExploreConstant is the UCT exploration weight c.
		ExploreConstant float64 `yaml:"explore_constant"`
		// BudgetMillis bounds a single Search call's wall-clock time.
		BudgetMillis int64 `yaml:"budget_millis"`
		Seed         int64 `yaml:"seed"`
	} `yaml:"mcts"`

	Negamax struct {
		Depth int `yaml:"depth"`
	} `yaml:"negamax"`
}

// Budget returns the configured MCTS time budget as a time.Duration.
func (e Engine) Budget() time.Duration {
	return time.Duration(e.MCTS.BudgetMillis) * time.Millisecond
}

// Default returns the engine's built-in tuning, matching the
// specification's MCTS exploration constant of 0.1.
func Default() Engine {
	var e Engine
	e.MCTS.ExploreConstant = 0.1
	e.MCTS.BudgetMillis = 2000
	e.MCTS.Seed = 1
	e.Negamax.Depth = 4
	return e
}

// Load reads and parses a YAML configuration file at path, starting from
// Default and overriding only the fields present in the file.
func Load(path string) (Engine, error) {
	e := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Engine{}, err
	}
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Engine{}, err
	}
	return e, nil
}
