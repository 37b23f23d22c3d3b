package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Providers.validate(); err != nil {
		return fmt.Errorf("providers: %w", err)
	}

	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be > 0 (got %d)", c.Cache.Size)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 (got %s)", c.Cache.TTL)
	}

	if c.Database.Enabled() && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit.per_minute must be >= 0 (got %d)", c.RateLimit.PerMinute)
	}

	if c.WordOfDay.WarmEnabled {
		if _, err := cron.ParseStandard(c.WordOfDay.WarmSchedule); err != nil {
			return fmt.Errorf("word_of_day.warm_schedule: %w", err)
		}
	}

	return nil
}

func (p *ProvidersConfig) validate() error {
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", p.Timeout)
	}
	if p.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %s)", p.RetryDelay)
	}
	if p.UserAgent == "" {
		return fmt.Errorf("user_agent is required")
	}
	if p.Ngram.YearStart > p.Ngram.YearEnd {
		return fmt.Errorf("ngram.year_start (%d) must not exceed year_end (%d)",
			p.Ngram.YearStart, p.Ngram.YearEnd)
	}
	return nil
}
