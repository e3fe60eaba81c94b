package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

type StoreConfig struct {
	Capacity int `json:"capacity"`
}

type CollectorConfig struct {
	IntervalSecs int `json:"intervalSecs"`
}

type ProcessorConfig struct {
	IdleBackoffMillis int `json:"idleBackoffMillis"`
}

type TransmitterConfig struct {
	PollIntervalSecs    int `json:"pollIntervalSecs"`
	PacingMillis        int `json:"pacingMillis"`
	ContactIntervalSecs int `json:"contactIntervalSecs"`
}

type EpsModbusConfig struct {
	Host string `json:"host"`
}

type EpsConfig struct {
	// when Modbus is nil the mock EPS is used
	Modbus *EpsModbusConfig `json:"modbus"`
}

type SupabaseConfig struct {
	Url string `json:"url"`
	// key is specified via env var
	Schema string `json:"schema"`
}

type GroundLinkConfig struct {
	SqlitePath         string         `json:"sqlitePath"`
	UploadIntervalSecs int            `json:"uploadIntervalSecs"`
	Supabase           SupabaseConfig `json:"supabase"`
}

type Config struct {
	LogLevel    string            `json:"logLevel"`
	SatelliteID uuid.UUID         `json:"satelliteId"`
	Store       StoreConfig       `json:"store"`
	Collector   CollectorConfig   `json:"collector"`
	Processor   ProcessorConfig   `json:"processor"`
	Transmitter TransmitterConfig `json:"transmitter"`
	Eps         EpsConfig         `json:"eps"`
	GroundLink  GroundLinkConfig  `json:"groundLink"`
}

func Read(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	err = json.Unmarshal(content, &config)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&config)

	return config, nil
}

// applyDefaults fills in the reference timings for any interval left unset.
func applyDefaults(config *Config) {
	if config.Store.Capacity == 0 {
		config.Store.Capacity = 50
	}
	if config.Collector.IntervalSecs == 0 {
		config.Collector.IntervalSecs = 5
	}
	if config.Processor.IdleBackoffMillis == 0 {
		config.Processor.IdleBackoffMillis = 1000
	}
	if config.Transmitter.PollIntervalSecs == 0 {
		config.Transmitter.PollIntervalSecs = 2
	}
	if config.Transmitter.PacingMillis == 0 {
		config.Transmitter.PacingMillis = 50
	}
	if config.Transmitter.ContactIntervalSecs == 0 {
		config.Transmitter.ContactIntervalSecs = 30
	}
	if config.GroundLink.UploadIntervalSecs == 0 {
		config.GroundLink.UploadIntervalSecs = 5
	}
	if config.GroundLink.SqlitePath == "" {
		config.GroundLink.SqlitePath = "downlink.sqlite"
	}
}
