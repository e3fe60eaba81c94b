package eps

// powerBlock maps the holding registers exposed by the bench EPS simulator.
// Floats are two registers each, big endian.
var powerBlock = registerBlock{
	name:         "Power",
	startAddr:    4096,
	numRegisters: 11,
	registers: map[string]register{
		"BatteryVoltage": {
			startAddr: 4096,
			dataType:  floatType,
		},
		"BatteryCurrent": {
			startAddr: 4098,
			dataType:  floatType,
		},
		"SolarPanelVoltage": {
			startAddr: 4100,
			dataType:  floatType,
		},
		"SolarPanelCurrent": {
			startAddr: 4102,
			dataType:  floatType,
		},
		"BatteryTemperature": {
			startAddr: 4104,
			dataType:  int16Type,
		},
		"BatteryLevel": {
			startAddr: 4105,
			dataType:  uint16Type,
		},
		"PowerState": {
			startAddr: 4106,
			dataType:  uint16Type,
		},
	},
}
