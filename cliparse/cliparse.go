package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseRedis    = "redis"
	DatabaseMemory   = "memory"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Timezone     string
	Location     *time.Location

	// Weekly voting deadline (default Friday 15:00 local)
	DeadlineWeekday time.Weekday
	DeadlineHour    int

	// Per-client request rate limit; 0 disables
	RateLimit float64
	RateBurst int
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var deadlineDay string

	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	fs := flag.NewFlagSet("lunch-vote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (file path for sqlite, redis:// for redis)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres, redis or memory)")
	fs.StringVar(&cfg.Timezone, "tz", "", "Team time zone, e.g. Europe/Berlin")
	fs.StringVar(&deadlineDay, "deadline-day", "", "Weekday voting closes")
	fs.IntVar(&cfg.DeadlineHour, "deadline-hour", -1, "Hour (0-23) voting closes")
	fs.Float64Var(&cfg.RateLimit, "rate", -1, "Requests per second per client (0 disables)")
	fs.IntVar(&cfg.RateBurst, "burst", 0, "Rate limit burst")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseRedis, DatabaseMemory:
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case DatabaseSQLite:
			cfg.DatabaseURL = "lunch-vote.db"
		case DatabaseMemory:
		default:
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	if cfg.Timezone == "" {
		cfg.Timezone = os.Getenv("TIMEZONE")
	}
	if cfg.Timezone == "" {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TIMEZONE: %w", err)
		}
		cfg.Location = loc
	}

	if deadlineDay == "" {
		deadlineDay = os.Getenv("VOTING_DEADLINE_DAY")
	}
	if deadlineDay == "" {
		cfg.DeadlineWeekday = time.Friday
	} else {
		wd, err := parseWeekday(deadlineDay)
		if err != nil {
			return Config{}, err
		}
		cfg.DeadlineWeekday = wd
	}

	if cfg.DeadlineHour < 0 {
		if hourStr := os.Getenv("VOTING_DEADLINE_HOUR"); hourStr != "" {
			hour, err := strconv.Atoi(hourStr)
			if err != nil {
				return Config{}, errors.New("invalid VOTING_DEADLINE_HOUR env variable")
			}
			cfg.DeadlineHour = hour
		} else {
			cfg.DeadlineHour = 15
		}
	}
	if cfg.DeadlineHour > 23 {
		return Config{}, errors.New("deadline hour must be between 0 and 23")
	}

	if cfg.RateLimit < 0 {
		if rateStr := os.Getenv("RATE_LIMIT"); rateStr != "" {
			rate, err := strconv.ParseFloat(rateStr, 64)
			if err != nil || rate < 0 {
				return Config{}, errors.New("invalid RATE_LIMIT env variable")
			}
			cfg.RateLimit = rate
		} else {
			cfg.RateLimit = 10
		}
	}
	if cfg.RateBurst == 0 {
		if burstStr := os.Getenv("RATE_BURST"); burstStr != "" {
			burst, err := strconv.Atoi(burstStr)
			if err != nil {
				return Config{}, errors.New("invalid RATE_BURST env variable")
			}
			cfg.RateBurst = burst
		} else {
			cfg.RateBurst = 20
		}
	}
	if cfg.RateLimit > 0 && cfg.RateBurst < 1 {
		return Config{}, errors.New("rate limit burst must be at least 1")
	}

	return cfg, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) || strings.EqualFold(s, d.String()[:3]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid deadline weekday %q", s)
}
