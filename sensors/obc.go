package sensors

import "runtime"

// ObcStats is a snapshot of the on-board computer's runtime health, used to
// fill the SystemStatus telemetry fields.
type ObcStats struct {
	HeapFree       uint32
	StackHighWater uint32
	TaskCount      uint8
}

// ReadObcStats samples the Go runtime for the closest available equivalents
// of the flight software's memory and task metrics.
func ReadObcStats() ObcStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	taskCount := runtime.NumGoroutine()
	if taskCount > 255 {
		taskCount = 255
	}

	return ObcStats{
		HeapFree:       uint32(mem.HeapIdle),
		StackHighWater: uint32(mem.StackInuse),
		TaskCount:      uint8(taskCount),
	}
}
