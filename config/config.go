package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Redis     RedisConfig     `yaml:"redis"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DBName   string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

type KafkaConfig struct {
	Host                   string `yaml:"host"`
	Port                   int    `yaml:"port"`
	NDRActionTopicName     string `yaml:"ndr_action_topic_name"`
	NDRUpdatedTopicName    string `yaml:"ndr_updated_topic_name"`
	DashboardConsumerGroup string `yaml:"dashboard_consumer_group"`
}

type RedisConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DashboardConfig struct {
	HTTPAddr string `yaml:"http_addr"`

	// Handed to the browser as-is via /api/v1/settings.
	MapProviderKey string `yaml:"map_provider_key"`

	NDRCacheTTLSeconds int `yaml:"ndr_cache_ttl_seconds"`
	SessionTTLSeconds  int `yaml:"session_ttl_seconds"`

	// "upstream" | "mock". Mock fabricates tracking data locally instead of
	// calling the seller API.
	TrackingMode      string `yaml:"tracking_mode"`
	MockLatencyMillis int    `yaml:"mock_latency_millis"`

	TrackingRateLimitPerMinute int `yaml:"tracking_rate_limit_per_minute"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return &config, nil
}
