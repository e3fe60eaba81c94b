package eps

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/grid-x/modbus"
)

// dataType represents the different types of data the EPS exposes over modbus.
type dataType struct {
	name          string                   // the name of the data type
	dataLength    uint16                   // the number of underlying bytes to represent the data type
	fromBytesFunc func([]byte) interface{} // function to convert the bytes to the concrete data type
}

var floatType = dataType{
	name:       "float",
	dataLength: 4,
	fromBytesFunc: func(bytes []byte) interface{} {
		valUint32 := binary.BigEndian.Uint32(bytes)
		valFloat32 := math.Float32frombits(valUint32)
		return float64(valFloat32)
	},
}

var uint16Type = dataType{
	name:       "uint16",
	dataLength: 2,
	fromBytesFunc: func(bytes []byte) interface{} {
		return binary.BigEndian.Uint16(bytes)
	},
}

var int16Type = dataType{
	name:       "int16",
	dataLength: 2,
	fromBytesFunc: func(bytes []byte) interface{} {
		valUint16 := binary.BigEndian.Uint16(bytes)
		return int16(valUint16)
	},
}

// register holds a value on the modbus slave at the given address.
type register struct {
	startAddr uint16
	dataType  dataType
}

// registerBlock represents a contiguous block of modbus registers that are read in one chunk.
type registerBlock struct {
	name         string              // name of the block used for context/logging
	startAddr    uint16              // the first register address of the block
	numRegisters uint16              // the number of registers in this block (each register is two bytes)
	registers    map[string]register // details of all the registers of interest in this block, keyed by unique name
}

// pollBlock reads a single register block from the client and returns a map of the parsed values, keyed by metric name.
func pollBlock(client modbus.Client, block registerBlock) (map[string]interface{}, error) {

	bytes, err := client.ReadHoldingRegisters(block.startAddr, block.numRegisters)
	if err != nil {
		return nil, fmt.Errorf("read block '%s': %w", block.name, err)
	}

	return parseBlock(bytes, block)
}

// parseBlock extracts each metric of interest from the raw block of bytes.
func parseBlock(bytes []byte, block registerBlock) (map[string]interface{}, error) {

	metrics := make(map[string]interface{}, len(block.registers))
	for key, reg := range block.registers {

		// sanity check the register layout to avoid out of bound panics
		offset := (int(reg.startAddr) - int(block.startAddr)) * 2 // registers are two bytes long
		if offset < 0 {
			return nil, fmt.Errorf("register configuration for '%s' precedes block", key)
		}
		if offset+int(reg.dataType.dataLength) > len(bytes) {
			return nil, fmt.Errorf("register configuration for '%s' exceeds block", key)
		}

		registerBytes := bytes[offset:(offset + int(reg.dataType.dataLength))]
		metrics[key] = reg.dataType.fromBytesFunc(registerBytes)
	}

	return metrics, nil
}
