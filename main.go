package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/callunaspace/obctelemetry/collector"
	"github.com/callunaspace/obctelemetry/config"
	"github.com/callunaspace/obctelemetry/eps"
	"github.com/callunaspace/obctelemetry/groundlink"
	"github.com/callunaspace/obctelemetry/mission"
	"github.com/callunaspace/obctelemetry/processor"
	"github.com/callunaspace/obctelemetry/store"
	"github.com/callunaspace/obctelemetry/telemetry"
	"github.com/callunaspace/obctelemetry/transmitter"
)

func main() {

	configPath := flag.String("config", "obctelemetry.json", "path to the configuration file")
	flag.Parse()

	conf, err := config.Read(*configPath)
	if err != nil {
		slog.Error("Failed to read config", "error", err)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(conf.LogLevel)}))
	slog.SetDefault(logger)

	slog.Info("Starting telemetry pipeline...", "satellite_id", conf.SatelliteID)

	ctx, cancel := context.WithCancel(context.Background())

	clock := mission.NewClock()
	packetStore := store.New(conf.Store.Capacity)

	// the power generator is backed by the bench EPS when one is configured,
	// otherwise by the mock
	var powerGenerator func() telemetry.PowerData
	if conf.Eps.Modbus != nil {
		powerSystem, err := eps.New(conf.SatelliteID, conf.Eps.Modbus.Host)
		if err != nil {
			slog.Error("Failed to connect to EPS", "error", err)
			return
		}
		powerGenerator = powerSystem.Generator()
	} else {
		powerGenerator = eps.NewMock(clock).Generator()
	}

	platform, err := groundlink.New(
		conf.GroundLink.Supabase.Url,
		os.Getenv("SUPABASE_KEY"),
		conf.GroundLink.Supabase.Schema,
		conf.GroundLink.SqlitePath,
	)
	if err != nil {
		slog.Error("Failed to create ground link platform", "error", err)
		return
	}
	go platform.Run(ctx, time.Duration(conf.GroundLink.UploadIntervalSecs)*time.Second)

	coll := collector.New(packetStore, clock, collector.DefaultGenerators(clock, powerGenerator))
	go coll.Run(ctx, time.Duration(conf.Collector.IntervalSecs)*time.Second)

	proc := processor.New(packetStore, processor.LogPresenter)
	go proc.Run(ctx, time.Duration(conf.Processor.IdleBackoffMillis)*time.Millisecond)

	// transmitted packets are flattened and handed to the ground link
	sink := func(count uint32, p telemetry.Packet) {
		record, err := telemetry.NewDownlinkRecord(conf.SatelliteID, time.Now(), p)
		if err != nil {
			slog.Error("Failed to build downlink record", "error", err)
			return
		}
		platform.Downlinked <- record
	}

	gate := mission.IntervalGate(clock, time.Duration(conf.Transmitter.ContactIntervalSecs)*time.Second)
	trans := transmitter.New(packetStore, gate, sink, time.Duration(conf.Transmitter.PacingMillis)*time.Millisecond)
	go trans.Run(ctx, time.Duration(conf.Transmitter.PollIntervalSecs)*time.Second)

	// wait for a ctrl-c interrupt before exiting
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	<-signalChan

	// cancel any open go-routines and give them up to 100ms to gracefully shutdown
	cancel()
	time.Sleep(time.Millisecond * 100)

	slog.Info("Exiting")
	os.Exit(0)
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
