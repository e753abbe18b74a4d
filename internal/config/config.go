// Package config provides configuration management for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for stored records (0 means no expiration)
	RecordTTL time.Duration
}

// PlannerConfig holds the reservation policy values. The working-hours
// window, the turnover buffer and the default room times are deployment
// policy, so they are loaded here instead of living as constants next to
// the rules.
type PlannerConfig struct {
	// WorkdayStartHour and WorkdayEndHour bound the bookable window;
	// a request must start at or after the start hour and end before
	// the end hour.
	WorkdayStartHour int
	WorkdayEndHour   int
	// BufferHours is the mandatory idle time between a room's open time
	// and the next meeting's start.
	BufferHours int
	// DefaultOpenTime and DefaultCloseTime are applied to rooms at creation.
	DefaultOpenTime  time.Time
	DefaultCloseTime time.Time
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Parse TTL from environment variable (in hours)
	ttlHours, _ := strconv.Atoi(getEnv("REDIS_RECORD_TTL_HOURS", "0"))
	ttl := time.Duration(ttlHours) * time.Hour

	// Parse DB index
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:   getEnvBool("REDIS_ENABLED", false),
		URI:       getEnv("REDIS_URI_PLANNER", ""),
		Host:      getEnv("REDIS_HOST_PLANNER", getEnv("REDIS_ADDRESS", "localhost")),
		Port:      getEnv("REDIS_PORT_PLANNER", "6379"),
		Username:  getEnv("REDIS_USERNAME_PLANNER", ""),
		Password:  getEnv("REDIS_PASSWORD_PLANNER", getEnv("REDIS_PASSWORD", "")),
		DB:        db,
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", "planner:"),
		RecordTTL: ttl,
	}
}

// GetPlannerConfig loads the reservation policy from environment variables,
// falling back to the historical 08:00-20:00 window with a one-hour buffer
func GetPlannerConfig() PlannerConfig {
	return PlannerConfig{
		WorkdayStartHour: getEnvInt("PLANNER_WORKDAY_START_HOUR", 8),
		WorkdayEndHour:   getEnvInt("PLANNER_WORKDAY_END_HOUR", 20),
		BufferHours:      getEnvInt("PLANNER_BUFFER_HOURS", 1),
		DefaultOpenTime:  getEnvTimeOfDay("PLANNER_DEFAULT_OPEN_TIME", "08:00"),
		DefaultCloseTime: getEnvTimeOfDay("PLANNER_DEFAULT_CLOSE_TIME", "20:00"),
	}
}

// Validate checks that the planner policy describes a usable window
func (c PlannerConfig) Validate() error {
	if c.WorkdayStartHour < 0 || c.WorkdayStartHour > 23 {
		return fmt.Errorf("workday start hour %d out of range", c.WorkdayStartHour)
	}
	if c.WorkdayEndHour < 1 || c.WorkdayEndHour > 24 {
		return fmt.Errorf("workday end hour %d out of range", c.WorkdayEndHour)
	}
	if c.WorkdayStartHour >= c.WorkdayEndHour {
		return fmt.Errorf("workday start hour %d is not before end hour %d", c.WorkdayStartHour, c.WorkdayEndHour)
	}
	if c.BufferHours < 0 {
		return fmt.Errorf("buffer hours %d is negative", c.BufferHours)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvInt retrieves an integer environment variable
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvTimeOfDay retrieves an HH:MM environment variable as a time-of-day
func getEnvTimeOfDay(key, defaultValue string) time.Time {
	value := getEnv(key, defaultValue)

	parsed, err := time.Parse("15:04", value)
	if err != nil {
		parsed, _ = time.Parse("15:04", defaultValue)
	}
	return parsed
}
