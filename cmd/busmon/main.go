// cmd/busmon/main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/tamzrod/i2c-sentry/internal/config"
	"github.com/tamzrod/i2c-sentry/internal/driver"
	"github.com/tamzrod/i2c-sentry/internal/driver/i2cbus"
	"github.com/tamzrod/i2c-sentry/internal/health"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: busmon <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Open the bus
	// --------------------

	if _, err := host.Init(); err != nil {
		log.Fatalf("host init failed: %v", err)
	}

	bus, err := i2creg.Open(cfg.Device.Bus)
	if err != nil {
		log.Fatalf("bus open failed (bus=%q): %v", cfg.Device.Bus, err)
	}
	defer bus.Close()

	write, writeRead := i2cbus.Capabilities(bus)

	// --------------------
	// Bring up the driver
	// --------------------

	drv := driver.New()
	st := drv.Init(driver.Config{
		Write:            write,
		WriteRead:        writeRead,
		Addr:             cfg.Device.Addr,
		Timeout:          time.Duration(cfg.Device.TimeoutMs) * time.Millisecond,
		OfflineThreshold: cfg.Device.OfflineThreshold,
	})
	if !st.Ok() {
		log.Fatalf("driver init failed: %v", st)
	}

	// passive presence check first; this never moves health counters
	if st := drv.Probe(); st.Ok() {
		log.Printf("device present at 0x%02X", cfg.Device.Addr)
	} else {
		log.Printf("probe failed: %v", st)
	}

	// --------------------
	// Monitoring loop
	// --------------------

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	interval := time.Duration(cfg.Device.Poll.IntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			drv.Close()
			log.Printf("shut down")
			return

		case now := <-ticker.C:
			drv.Tick(now)

			var id [1]byte
			if st := drv.ReadRegs(driver.RegChipID, id[:]); st.Ok() {
				log.Printf("chip id 0x%02X state=%s", id[0], drv.State())
			} else {
				log.Printf("identity read failed: %v", st)
				logHealth(drv)
			}

			if drv.State() == health.StateOffline {
				log.Printf("device offline, attempting recovery")
				if st := drv.Recover(); st.Ok() {
					log.Printf("recovery succeeded, state=%s", drv.State())
				} else {
					log.Printf("recovery failed: %v", st)
				}
			}
		}
	}
}

func logHealth(drv *driver.Driver) {
	h := drv.Health()
	log.Printf(
		"health: state=%s consecutive=%d failures=%d success=%d lastError=%v",
		h.State,
		h.ConsecutiveFailures,
		h.TotalFailures,
		h.TotalSuccess,
		h.LastError,
	)
}
