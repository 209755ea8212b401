package radio_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannic/calliope-nrf24/driver/stub"
	"github.com/jannic/calliope-nrf24/radio"
)

func TestStandbyConsumedAfterRx(t *testing.T) {
	sb, err := radio.NewStandby(stub.New(), 7)
	require.NoError(t, err)

	_, err = sb.Rx()
	require.NoError(t, err)

	_, err = sb.Rx()
	assert.ErrorIs(t, err, radio.ErrConsumed)

	_, err = sb.Tx()
	assert.ErrorIs(t, err, radio.ErrConsumed)
}

func TestStandbyConsumedAfterTx(t *testing.T) {
	sb, err := radio.NewStandby(stub.New(), 7)
	require.NoError(t, err)

	_, err = sb.Tx()
	require.NoError(t, err)

	_, err = sb.Tx()
	assert.ErrorIs(t, err, radio.ErrConsumed)
}

func TestTxRxRoundTrip(t *testing.T) {
	txDrv := stub.New()
	rxDrv := stub.New()
	stop := stub.ConnectDrivers(txDrv, rxDrv)
	defer stop()

	txStandby, err := radio.NewStandby(txDrv, 7)
	require.NoError(t, err)
	tx, err := txStandby.Tx()
	require.NoError(t, err)

	rxStandby, err := radio.NewStandby(rxDrv, 7)
	require.NoError(t, err)
	rx, err := rxStandby.Rx()
	require.NoError(t, err)

	sent, err := tx.Transmit([]byte("hello"))
	require.NoError(t, err)
	assert.True(t, sent)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := rx.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestReceiveTimesOutWithNoTraffic(t *testing.T) {
	rxDrv := stub.New()
	sb, err := radio.NewStandby(rxDrv, 7)
	require.NoError(t, err)
	rx, err := sb.Rx()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	_, err = rx.Receive(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTryReceiveDropsFramesForWrongGroup(t *testing.T) {
	txDrv := stub.New()
	rxDrv := stub.New()
	stop := stub.ConnectDrivers(txDrv, rxDrv)
	defer stop()

	txStandby, err := radio.NewStandby(txDrv, 5)
	require.NoError(t, err)
	tx, err := txStandby.Tx()
	require.NoError(t, err)

	rxStandby, err := radio.NewStandby(rxDrv, 6)
	require.NoError(t, err)
	rx, err := rxStandby.Rx()
	require.NoError(t, err)

	_, err = tx.Transmit([]byte("hello"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, ok, err := rx.TryReceive()
	assert.ErrorIs(t, err, radio.ErrNoFrame)
	assert.False(t, ok)
}

func TestTxUsableAfterStandbyConsumed(t *testing.T) {
	sb, err := radio.NewStandby(stub.New(), 7)
	require.NoError(t, err)
	tx, err := sb.Tx()
	require.NoError(t, err)
	rx2, err := radio.NewStandby(stub.New(), 7)
	require.NoError(t, err)
	_, err = rx2.Rx()
	require.NoError(t, err)

	// A second (illegal) consuming call on the original standby reports
	// ErrConsumed, while the Tx obtained from the first call keeps its own
	// driver and still transmits.
	_, err = sb.Tx()
	assert.ErrorIs(t, err, radio.ErrConsumed)

	ok, err := tx.Transmit([]byte("x"))
	require.NoError(t, err)
	assert.True(t, ok)
}
