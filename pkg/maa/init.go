package maa

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// State is the lifecycle position of an Initializer.
type State uint32

const (
	StateUninitialized State = iota
	StateInitialized
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Initializer detects the running board at most once.
//
// Init moves it from StateUninitialized to StateInitialized, or to
// StateFailed when the probe errors. Both are terminal: later Init calls
// return ErrorPlatformAlreadyInitialised and do not probe again.
//
// All methods are safe for concurrent use. Platform reads do not lock.
type Initializer struct {
	prober Prober
	logger *slog.Logger

	mu       sync.Mutex
	state    atomic.Uint32
	platform Platform
	err      error
}

// InitializerOption configures an Initializer.
type InitializerOption func(*Initializer)

// WithLogger sets the logger used for probe results. Defaults to slog.Default().
func WithLogger(l *slog.Logger) InitializerOption {
	return func(i *Initializer) {
		if l != nil {
			i.logger = l
		}
	}
}

// NewInitializer returns an uninitialized Initializer that will detect the
// board with prober. A nil prober uses NewSysfsProber.
func NewInitializer(prober Prober, opts ...InitializerOption) *Initializer {
	if prober == nil {
		prober = NewSysfsProber()
	}
	i := &Initializer{
		prober:   prober,
		platform: UnknownPlatform,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Initializer) log() *slog.Logger {
	if i.logger != nil {
		return i.logger
	}
	return slog.Default()
}

// Init probes the host and records the board identity.
func (i *Initializer) Init() Result {
	if State(i.state.Load()) != StateUninitialized {
		return ErrorPlatformAlreadyInitialised
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if State(i.state.Load()) != StateUninitialized {
		return ErrorPlatformAlreadyInitialised
	}

	platform, err := i.prober.Probe()
	if err != nil {
		i.err = err
		i.state.Store(uint32(StateFailed))
		i.log().Error("platform probe failed", "error", err)
		return ErrorUnspecified
	}
	if !platform.Valid() {
		i.log().Warn("probe returned unregistered platform", "platform", int(platform))
		platform = UnknownPlatform
	}

	// platform must be written before the state store publishes it.
	i.platform = platform
	i.state.Store(uint32(StateInitialized))

	if platform == UnknownPlatform {
		i.log().Info("board not recognised, using fallback mapping",
			"fallback", platform.Fallback().String())
	} else {
		i.log().Debug("platform detected", "platform", platform.String())
	}
	return Success
}

// Platform returns the detected identity, or UnknownPlatform if Init has
// not succeeded.
func (i *Initializer) Platform() Platform {
	if State(i.state.Load()) != StateInitialized {
		return UnknownPlatform
	}
	return i.platform
}

// Board returns the registry descriptor of the detected identity.
func (i *Initializer) Board() Board {
	b, _ := LookupBoard(i.Platform())
	return b
}

// State returns the current lifecycle state.
func (i *Initializer) State() State {
	return State(i.state.Load())
}

// Err returns the probe error after a failed Init, and nil otherwise.
func (i *Initializer) Err() error {
	if State(i.state.Load()) != StateFailed {
		return nil
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.err
}

var defaultInit atomic.Pointer[Initializer]

func init() {
	defaultInit.Store(NewInitializer(nil))
}

// Default returns the process-wide Initializer used by Init and
// GetPlatformType.
func Default() *Initializer {
	return defaultInit.Load()
}

// SetDefault replaces the process-wide Initializer and returns the
// previous one. It exists for tests and for embedding processes that need
// a custom Prober; production code calls it at most once before Init.
func SetDefault(i *Initializer) *Initializer {
	if i == nil {
		i = NewInitializer(nil)
	}
	return defaultInit.Swap(i)
}

// Init detects the board using the process-wide Initializer.
func Init() Result {
	return Default().Init()
}

// GetPlatformType returns the board identity detected by Init. Before a
// successful Init it returns UnknownPlatform.
func GetPlatformType() Platform {
	return Default().Platform()
}
