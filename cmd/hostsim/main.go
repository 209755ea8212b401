//go:build !tinygo && !baremetal

// Command hostsim runs a transmitter and a receiver against each other
// in-process, using the in-memory stub transceiver, so the frame codec
// and mode state machine can be exercised without any board attached.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/jannic/calliope-nrf24/driver/stub"
	"github.com/jannic/calliope-nrf24/radio"
)

var (
	group    = flag.Uint8("group", 7, "radio group (0-255)")
	interval = flag.Duration("interval", 200*time.Millisecond, "send interval")
	message  = flag.String("message", "test", "payload to transmit")
)

func main() {
	flag.Parse()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{ReportTimestamp: true})
	logger.Info("starting host simulation", "group", *group, "interval", *interval)

	txDrv := stub.New()
	rxDrv := stub.New()
	stopForwarding := stub.ConnectDrivers(txDrv, rxDrv)
	defer stopForwarding()

	txStandby, err := radio.NewStandby(txDrv, *group, radio.WithLogger(logger.WithPrefix("tx")))
	if err != nil {
		logger.Fatal("configure transmitter", "err", err)
	}
	tx, err := txStandby.Tx()
	if err != nil {
		logger.Fatal("enter tx mode", "err", err)
	}

	rxStandby, err := radio.NewStandby(rxDrv, *group, radio.WithLogger(logger.WithPrefix("rx")))
	if err != nil {
		logger.Fatal("configure receiver", "err", err)
	}
	rx, err := rxStandby.Rx()
	if err != nil {
		logger.Fatal("enter rx mode", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sent, err := tx.Transmit([]byte(*message))
				if err != nil && err != radio.ErrTransmitterBusy {
					logger.Error("transmit failed", "err", err)
					continue
				}
				logger.Info("transmitted", "sent", sent, "payload", *message)
			}
		}
	}()

	for {
		payload, err := rx.Receive(ctx)
		if err != nil {
			logger.Info("shutting down")
			return
		}
		logger.Info("received", "payload", string(payload))
	}
}
