package telemetry

// PacketType identifies which payload variant a packet carries.
type PacketType uint8

const (
	TypeSystemStatus PacketType = iota
	TypePowerData
	TypeTemperatureData
	TypeCommunicationStatus
)

func (t PacketType) String() string {
	switch t {
	case TypeSystemStatus:
		return "system_status"
	case TypePowerData:
		return "power_data"
	case TypeTemperatureData:
		return "temperature_data"
	case TypeCommunicationStatus:
		return "communication_status"
	}
	return "unknown"
}

// Header is common to every telemetry packet.
// Timestamp is a mission tick count, not wall-clock time.
type Header struct {
	Type      PacketType
	Timestamp uint32
	Sequence  uint16
	Priority  uint8
}

// SystemStatus holds OBC health data.
type SystemStatus struct {
	UptimeSeconds  uint32
	SystemMode     uint8
	CPUUsage       uint8
	StackHighWater uint32
	HeapFree       uint32
	TaskCount      uint8
	ErrorCount     uint16
}

// PowerData holds readings from the electrical power system.
type PowerData struct {
	BatteryVoltage     float64
	BatteryTemperature int16
	BatteryCurrent     float64
	SolarPanelVoltage  float64
	SolarPanelCurrent  float64
	BatteryLevel       uint8 // 0-100
	PowerState         uint8
}

// TemperatureData holds the temperatures of each subsystem, in degrees celsius.
type TemperatureData struct {
	Obc      int16
	Comms    int16
	Payload  int16
	Battery  int16
	External int16
}

// CommunicationStatus holds the operational state of the subsystems.
type CommunicationStatus struct {
	CommsStatus        uint8
	AdcsStatus         uint8
	PayloadStatus      uint8
	PowerStatus        uint8
	CommsUptime        uint32
	PayloadUptime      uint32
	LastCommandID      uint16
	CommandSuccessRate uint8 // 0-100
}

// Packet is one framed telemetry record: a header plus exactly one payload
// variant, selected by Header.Type. Consumers switch on the type tag rather
// than type-asserting the payload.
type Packet struct {
	Header Header

	System        *SystemStatus
	Power         *PowerData
	Temperature   *TemperatureData
	Communication *CommunicationStatus
}

// Payload returns whichever payload variant the packet carries.
func (p Packet) Payload() interface{} {
	switch p.Header.Type {
	case TypeSystemStatus:
		return p.System
	case TypePowerData:
		return p.Power
	case TypeTemperatureData:
		return p.Temperature
	case TypeCommunicationStatus:
		return p.Communication
	}
	return nil
}
