package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "REDIS_ADDR", "KAFKA_BROKER", "KAFKA_GROUP_ID", "ROSTER_SIZE",
		"ATTENDANCE_DAYS", "PAYMENT_MONTHS", "ROSTER_SEED", "OUTBOX_POLL_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBroker)
	assert.Equal(t, "staffdesk-activity", cfg.KafkaGroupID)
	assert.Equal(t, 6, cfg.RosterSize)
	assert.Equal(t, 30, cfg.AttendanceDays)
	assert.Equal(t, 6, cfg.PaymentMonths)
	assert.Nil(t, cfg.RosterSeed)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("ROSTER_SIZE", "25")
	t.Setenv("ATTENDANCE_DAYS", "7")
	t.Setenv("ROSTER_SEED", "42")
	t.Setenv("OUTBOX_POLL_INTERVAL", "500ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 25, cfg.RosterSize)
	assert.Equal(t, 7, cfg.AttendanceDays)
	require.NotNil(t, cfg.RosterSeed)
	assert.Equal(t, uint64(42), *cfg.RosterSeed)
	assert.Equal(t, 500*time.Millisecond, cfg.OutboxPollInterval)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		key, value, msg string
	}{
		{"ROSTER_SIZE", "many", "ROSTER_SIZE"},
		{"PAYMENT_MONTHS", "-1", "PAYMENT_MONTHS must not be negative"},
		{"ROSTER_SEED", "abc", "ROSTER_SEED"},
		{"OUTBOX_POLL_INTERVAL", "soon", "OUTBOX_POLL_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
