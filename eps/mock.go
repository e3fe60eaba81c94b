package eps

import (
	"github.com/callunaspace/obctelemetry/mission"
	"github.com/callunaspace/obctelemetry/sensors"
	"github.com/callunaspace/obctelemetry/telemetry"
)

// Mock looks like an Eps but produces virtual sensor data, with the battery
// level discharging slowly over the mission clock's uptime.
type Mock struct {
	clock *mission.Clock
}

func NewMock(clock *mission.Clock) *Mock {
	return &Mock{clock: clock}
}

func (m *Mock) Poll() (telemetry.PowerData, error) {
	uptimeHours := m.clock.UptimeSeconds() / 3600

	level := 85 - int(uptimeHours)
	if level < 0 {
		level = 0
	}

	return telemetry.PowerData{
		BatteryVoltage:     sensors.VirtualVoltage(),
		BatteryTemperature: sensors.VirtualTemperature(),
		BatteryCurrent:     sensors.VirtualCurrent(),
		SolarPanelVoltage:  5.0,
		SolarPanelCurrent:  0.5,
		BatteryLevel:       uint8(level),
		PowerState:         0,
	}, nil
}

func (m *Mock) Generator() func() telemetry.PowerData {
	return func() telemetry.PowerData {
		data, _ := m.Poll()
		return data
	}
}
