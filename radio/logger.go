package radio

// Logger is the diagnostic sink a Standby/Rx/Tx radio reports to. Its
// method set matches *charmbracelet/log.Logger (Debug/Info/Warn/Error
// with structured key-value pairs), so callers on a host build can pass
// a real charmbracelet/log.Logger directly; embedded builds pass nil or
// a no-op implementation instead, since there's usually nowhere to send
// the output.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
func (nopLogger) Error(interface{}, ...interface{}) {}

// Option configures a Standby radio at construction time.
type Option func(*options)

type options struct {
	log       Logger
	retransmitDelay, retransmitCount uint8
	dataRate  DataRate
	power     PowerLevel
}

func defaultOptions() options {
	return options{
		log:              nopLogger{},
		retransmitDelay:  0,
		retransmitCount:  0,
		dataRate:         DataRate1Mbps,
		power:            PowerMax,
	}
}

// WithLogger attaches a diagnostic logger. The zero value keeps logging
// disabled.
func WithLogger(l Logger) Option {
	if l == nil {
		return func(o *options) { o.log = nopLogger{} }
	}
	return func(o *options) { o.log = l }
}

// WithAutoRetransmit overrides the reference device's defaults of no
// retries.
func WithAutoRetransmit(delay, count uint8) Option {
	return func(o *options) {
		o.retransmitDelay = delay
		o.retransmitCount = count
	}
}

// WithDataRate overrides the reference device's default of 1Mbps.
func WithDataRate(rate DataRate) Option {
	return func(o *options) { o.dataRate = rate }
}

// WithPowerLevel overrides the reference device's default of max power.
func WithPowerLevel(level PowerLevel) Option {
	return func(o *options) { o.power = level }
}
