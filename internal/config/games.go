package config

// GamesConfig holds limits and options for hosted games.
type GamesConfig struct {
	// MaxGames caps how many games the store holds at once
	MaxGames int `yaml:"max_games"`

	// AllowUndo lets players take back moves
	AllowUndo bool `yaml:"allow_undo"`
}

// NewGamesConfig creates a GamesConfig with default values.
func NewGamesConfig() *GamesConfig {
	return &GamesConfig{
		MaxGames:  1000,
		AllowUndo: true,
	}
}

// Validate requires room for at least one game.
func (c *GamesConfig) Validate() error {
	if c.MaxGames < 1 {
		return invalid("games.max_games", "must be at least 1, got %d", c.MaxGames)
	}
	return nil
}
