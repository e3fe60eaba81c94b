// Package collector runs the telemetry production loop: on each cycle it
// invokes the four telemetry generators, frames the results as packets and
// places them in the store.
package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/callunaspace/obctelemetry/mission"
	"github.com/callunaspace/obctelemetry/store"
	"github.com/callunaspace/obctelemetry/telemetry"
)

// Priority assigned per packet type. Power telemetry is ranked above the
// rest, matching the flight configuration.
const (
	prioritySystemStatus  = 1
	priorityPowerData     = 2
	priorityTemperature   = 1
	priorityCommunication = 1
)

// Generators holds the external measurement functions the collector frames
// into packets. They are treated as always-succeeding black boxes with no
// error channel.
type Generators struct {
	SystemStatus  func() telemetry.SystemStatus
	PowerData     func() telemetry.PowerData
	Temperature   func() telemetry.TemperatureData
	Communication func() telemetry.CommunicationStatus
}

// Collector periodically generates all telemetry types and stores them.
type Collector struct {
	store      *store.Store
	clock      *mission.Clock
	generators Generators
	logger     *slog.Logger
}

func New(s *store.Store, clock *mission.Clock, generators Generators) *Collector {
	return &Collector{
		store:      s,
		clock:      clock,
		generators: generators,
		logger:     slog.Default().With("task", "collector"),
	}
}

// Run loops forever, collecting telemetry every period. The ticker fires on
// period boundaries regardless of how long a collection cycle takes, so
// generation jitter does not accumulate drift. Exits when the context is
// cancelled.
func (c *Collector) Run(ctx context.Context, period time.Duration) error {

	collectTicker := time.NewTicker(period)
	defer collectTicker.Stop()

	c.logger.Info("Telemetry collector started", "period", period)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-collectTicker.C:
			c.Collect()
		}
	}
}

// Collect runs one collection cycle: each generator is invoked in a fixed
// order and its result framed with a fresh header and stored.
func (c *Collector) Collect() {
	c.storeSystemStatus()
	c.storePowerData()
	c.storeTemperature()
	c.storeCommunication()

	c.logger.Debug("Collected telemetry", "available", c.store.Available())
}

// header stamps a new packet header: current mission tick and the next
// shared sequence number.
func (c *Collector) header(t telemetry.PacketType, priority uint8) telemetry.Header {
	return telemetry.Header{
		Type:      t,
		Timestamp: c.clock.Ticks(),
		Sequence:  telemetry.NextSequence(),
		Priority:  priority,
	}
}

func (c *Collector) storeSystemStatus() {
	data := c.generators.SystemStatus()
	c.store.Store(telemetry.Packet{
		Header: c.header(telemetry.TypeSystemStatus, prioritySystemStatus),
		System: &data,
	})
}

func (c *Collector) storePowerData() {
	data := c.generators.PowerData()
	c.store.Store(telemetry.Packet{
		Header: c.header(telemetry.TypePowerData, priorityPowerData),
		Power:  &data,
	})
}

func (c *Collector) storeTemperature() {
	data := c.generators.Temperature()
	c.store.Store(telemetry.Packet{
		Header:      c.header(telemetry.TypeTemperatureData, priorityTemperature),
		Temperature: &data,
	})
}

func (c *Collector) storeCommunication() {
	data := c.generators.Communication()
	c.store.Store(telemetry.Packet{
		Header:        c.header(telemetry.TypeCommunicationStatus, priorityCommunication),
		Communication: &data,
	})
}
