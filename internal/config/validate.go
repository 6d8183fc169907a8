package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}

	if c.Scoring.Timeout <= 0 {
		return fmt.Errorf("scoring.timeout must be > 0 (got %v)", c.Scoring.Timeout)
	}

	if c.Match.ScoreThreshold < 0 || c.Match.ScoreThreshold > 100 {
		return fmt.Errorf("match.score_threshold must be in [0, 100] (got %d)", c.Match.ScoreThreshold)
	}

	if c.Match.InviteMessageMax <= 0 {
		return fmt.Errorf("match.invite_message_max must be > 0 (got %d)", c.Match.InviteMessageMax)
	}

	return nil
}
