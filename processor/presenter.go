package processor

import (
	"log/slog"

	"github.com/callunaspace/obctelemetry/telemetry"
)

// LogPresenter writes a per-type summary line for each packet via slog.
func LogPresenter(p telemetry.Packet) {
	switch p.Header.Type {
	case telemetry.TypeSystemStatus:
		slog.Info("SYSTEM",
			"uptime_s", p.System.UptimeSeconds,
			"heap_free", p.System.HeapFree,
			"tasks", p.System.TaskCount,
			"seq", p.Header.Sequence,
		)
	case telemetry.TypePowerData:
		slog.Info("POWER",
			"battery_v", p.Power.BatteryVoltage,
			"level_pct", p.Power.BatteryLevel,
			"battery_temp_c", p.Power.BatteryTemperature,
			"seq", p.Header.Sequence,
		)
	case telemetry.TypeTemperatureData:
		slog.Info("TEMP",
			"obc_c", p.Temperature.Obc,
			"comms_c", p.Temperature.Comms,
			"payload_c", p.Temperature.Payload,
			"seq", p.Header.Sequence,
		)
	case telemetry.TypeCommunicationStatus:
		slog.Info("COMMS",
			"status", p.Communication.CommsStatus,
			"uptime_s", p.Communication.CommsUptime,
			"success_pct", p.Communication.CommandSuccessRate,
			"seq", p.Header.Sequence,
		)
	}
}
