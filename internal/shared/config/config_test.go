package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"boxoffice/internal/money"
	"boxoffice/internal/pricing"
	"boxoffice/internal/shared/constants"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SERVICE_FEE_RATE", "SELECTION_TTL", "KAFKA_ENABLED", "KAFKA_BROKERS", "REDIS_HOST", "REDIS_PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.GetServerAddress())
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.Equal(t, pricing.DefaultServiceFeeRate, cfg.Storefront.ServiceFeeRate)
	assert.Equal(t, constants.TTL_SELECTION_DEFAULT, cfg.Storefront.SelectionTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVICE_FEE_RATE", "0.1")
	t.Setenv("SELECTION_TTL", "5m")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("RATE_LIMIT_WHITELISTED_IPS", "10.0.0.1,,10.0.0.2")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.GetServerAddress())
	assert.Equal(t, money.Rate(1000), cfg.Storefront.ServiceFeeRate)
	assert.Equal(t, 5*time.Minute, cfg.Storefront.SelectionTTL)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.WhitelistedIPs)
}

func TestLoad_InvalidFeeRateFallsBack(t *testing.T) {
	for _, value := range []string{"abc", "1.5", "-0.1", "0.123456"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("SERVICE_FEE_RATE", value)
			assert.Equal(t, pricing.DefaultServiceFeeRate, Load().Storefront.ServiceFeeRate)
		})
	}
}

func TestModes(t *testing.T) {
	cfg := &Config{GinMode: "release"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	cfg.GinMode = "debug"
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsDevelopment())
}
