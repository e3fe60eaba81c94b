package collector

import (
	"github.com/callunaspace/obctelemetry/mission"
	"github.com/callunaspace/obctelemetry/sensors"
	"github.com/callunaspace/obctelemetry/telemetry"
)

// DefaultGenerators wires the standard measurement set: OBC runtime
// introspection for system status, the given power source (EPS or mock),
// and virtual sensors for the rest.
func DefaultGenerators(clock *mission.Clock, power func() telemetry.PowerData) Generators {
	return Generators{
		SystemStatus:  systemStatusGenerator(clock),
		PowerData:     power,
		Temperature:   temperatureGenerator,
		Communication: communicationGenerator(clock),
	}
}

func systemStatusGenerator(clock *mission.Clock) func() telemetry.SystemStatus {
	return func() telemetry.SystemStatus {
		stats := sensors.ReadObcStats()
		return telemetry.SystemStatus{
			UptimeSeconds:  clock.UptimeSeconds(),
			SystemMode:     1, // nominal
			CPUUsage:       0, // not cheaply measurable on this platform
			StackHighWater: stats.StackHighWater,
			HeapFree:       stats.HeapFree,
			TaskCount:      stats.TaskCount,
			ErrorCount:     0,
		}
	}
}

func temperatureGenerator() telemetry.TemperatureData {
	obc := sensors.VirtualTemperature()
	return telemetry.TemperatureData{
		Obc:      obc,
		Comms:    obc - 5,
		Payload:  obc + 3,
		Battery:  sensors.VirtualTemperature(),
		External: sensors.VirtualTemperature() - 10,
	}
}

func communicationGenerator(clock *mission.Clock) func() telemetry.CommunicationStatus {
	return func() telemetry.CommunicationStatus {
		uptime := clock.UptimeSeconds()

		payloadUptime := uint32(0)
		if uptime > 100 {
			payloadUptime = uptime - 100
		}

		return telemetry.CommunicationStatus{
			CommsStatus:        1,
			AdcsStatus:         1,
			PayloadStatus:      1,
			PowerStatus:        1,
			CommsUptime:        uptime,
			PayloadUptime:      payloadUptime,
			LastCommandID:      0x25,
			CommandSuccessRate: 98,
		}
	}
}
