package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. All problems
// are reported together.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL))
	}
	if h := c.Auth.AdminPasswordHash; h != "" && !strings.HasPrefix(h, "$2") {
		errs = append(errs, errors.New("auth.admin_password_hash must be a bcrypt hash"))
	}

	if err := c.Compiler.validate(); err != nil {
		errs = append(errs, fmt.Errorf("compiler: %w", err))
	}

	if c.LLM.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens))
	}
	if c.LLM.HistoryMessages < 0 {
		errs = append(errs, fmt.Errorf("llm.history_messages must be >= 0 (got %d)", c.LLM.HistoryMessages))
	}
	if c.LLM.RetentionDays < 0 {
		errs = append(errs, fmt.Errorf("llm.retention_days must be >= 0 (got %d)", c.LLM.RetentionDays))
	}

	if c.RateLimit.ChatPerMinute <= 0 || c.RateLimit.LoginPerMinute <= 0 {
		errs = append(errs, errors.New("rate_limit values must be > 0"))
	}

	return errors.Join(errs...)
}

func (c *CompilerConfig) validate() error {
	if c.ReferenceYear < 2000 || c.ReferenceYear > 2100 {
		return fmt.Errorf("reference_year must be within 2000..2100 (got %d)", c.ReferenceYear)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.DetectionWindow < 1 {
		return fmt.Errorf("detection_window must be >= 1 (got %d)", c.DetectionWindow)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured schedule timezone, falling back to UTC.
func (c CompilerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
