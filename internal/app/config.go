package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go-staffdesk/internal/employee"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	RedisAddr          string
	KafkaBroker        string
	KafkaGroupID       string
	RosterSize         int
	AttendanceDays     int
	PaymentMonths      int
	RosterSeed         *uint64
	OutboxPollInterval time.Duration
}

// LoadConfig reads .env when present, then the process environment. Redis and
// Kafka stay disabled unless their address is set.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "3000"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "staffdesk-activity"),
	}

	var err error
	if cfg.RosterSize, err = getEnvInt("ROSTER_SIZE", employee.DefaultRosterSize); err != nil {
		return Config{}, err
	}
	if cfg.AttendanceDays, err = getEnvInt("ATTENDANCE_DAYS", employee.DefaultAttendanceDays); err != nil {
		return Config{}, err
	}
	if cfg.PaymentMonths, err = getEnvInt("PAYMENT_MONTHS", employee.DefaultPaymentMonths); err != nil {
		return Config{}, err
	}

	if raw := os.Getenv("ROSTER_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("ROSTER_SEED: %w", err)
		}
		cfg.RosterSeed = &seed
	}

	cfg.OutboxPollInterval = 3 * time.Second
	if raw := os.Getenv("OUTBOX_POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("OUTBOX_POLL_INTERVAL: %w", err)
		}
		cfg.OutboxPollInterval = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return n, nil
}
