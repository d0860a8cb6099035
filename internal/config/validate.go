package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports configuration values that cannot work at runtime.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		problems = append(problems, "paths.output_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.TaskFile) == "" {
		problems = append(problems, "paths.task_file must not be empty")
	}
	if c.Timeouts.FetchSeconds <= 0 {
		problems = append(problems, fmt.Sprintf("timeouts.fetch_seconds must be positive, got %d", c.Timeouts.FetchSeconds))
	}
	if c.Timeouts.ProbeSeconds <= 0 {
		problems = append(problems, fmt.Sprintf("timeouts.probe_seconds must be positive, got %d", c.Timeouts.ProbeSeconds))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
