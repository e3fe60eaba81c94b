// Package eps reads power telemetry from an electrical power system over
// Modbus TCP. On the bench this talks to an EPS simulator; the Mock in this
// package stands in when no simulator is attached.
package eps

import (
	"log/slog"
	"time"

	"github.com/callunaspace/obctelemetry/telemetry"
	"github.com/google/uuid"
	"github.com/grid-x/modbus"
)

// Eps handles Modbus communications with the electrical power system.
type Eps struct {
	id     uuid.UUID
	host   string
	client modbus.Client
	logger *slog.Logger
}

func New(id uuid.UUID, host string) (*Eps, error) {

	handler := modbus.NewTCPClientHandler(host)
	handler.Timeout = 10 * time.Second
	handler.SlaveID = 0x01

	err := handler.Connect()
	if err != nil {
		return nil, err
	}

	return &Eps{
		id:     id,
		host:   host,
		client: modbus.NewClient(handler),
		logger: slog.Default().With("eps_id", id, "host", host),
	}, nil
}

// Poll reads the power register block and converts it into a PowerData payload.
func (e *Eps) Poll() (telemetry.PowerData, error) {

	metrics, err := pollBlock(e.client, powerBlock)
	if err != nil {
		return telemetry.PowerData{}, err
	}

	return powerDataFromMetrics(metrics), nil
}

// Generator adapts the EPS into a power telemetry generator for the
// collector. Generators have no error channel, so a failed poll is logged
// and the last good reading is reused.
func (e *Eps) Generator() func() telemetry.PowerData {
	var last telemetry.PowerData
	return func() telemetry.PowerData {
		data, err := e.Poll()
		if err != nil {
			e.logger.Error("Failed to poll EPS, reusing last reading", "error", err)
			return last
		}
		last = data
		return data
	}
}

func powerDataFromMetrics(metrics map[string]interface{}) telemetry.PowerData {
	level := metrics["BatteryLevel"].(uint16)
	if level > 100 {
		level = 100
	}
	return telemetry.PowerData{
		BatteryVoltage:     metrics["BatteryVoltage"].(float64),
		BatteryTemperature: metrics["BatteryTemperature"].(int16),
		BatteryCurrent:     metrics["BatteryCurrent"].(float64),
		SolarPanelVoltage:  metrics["SolarPanelVoltage"].(float64),
		SolarPanelCurrent:  metrics["SolarPanelCurrent"].(float64),
		BatteryLevel:       uint8(level),
		PowerState:         uint8(metrics["PowerState"].(uint16)),
	}
}
