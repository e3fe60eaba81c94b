// Package sensors provides the virtual sensor readings that feed the
// telemetry generators. On flight hardware these would be replaced by ADC
// and bus reads; here they produce plausible values for bench runs.
package sensors

import "math/rand"

// VirtualVoltage returns a simulated battery bus voltage of 3.3V +/- 0.2V.
func VirtualVoltage() float64 {
	return 3.3 + float64(rand.Intn(200))/1000.0
}

// VirtualTemperature returns a simulated temperature of 25C +/- 15C.
func VirtualTemperature() int16 {
	return 25 + int16(rand.Intn(150)/10)
}

// VirtualCurrent returns a simulated current draw in amps.
func VirtualCurrent() float64 {
	return 0.1 + float64(rand.Intn(50))/1000.0
}
