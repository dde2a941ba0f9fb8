package scan

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Strategy selects how the pixel-heavy stages execute.
type Strategy int

const (
	// StrategyAuto parallelizes across the Accelerator's workers when one is
	// configured and falls back to scalar otherwise.
	StrategyAuto Strategy = iota

	// StrategyScalar keeps every stage on the calling goroutine.
	StrategyScalar

	// StrategyParallel requests row-band parallelism explicitly. Without an
	// initialized Accelerator it degrades to scalar.
	StrategyParallel
)

// String returns the strategy name used in logs and tool output.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyParallel:
		return "parallel"
	default:
		return "auto"
	}
}

// Accelerator carries the process-wide worker budget for parallel scans.
//
// It initializes exactly once: the first Initialize or InitializeWorkers call
// fixes the worker count and later calls are no-ops, so concurrent scanners
// sharing one handle agree on the pool size. The zero value is valid and
// reports zero workers, which the pipeline treats as "run scalar".
type Accelerator struct {
	once    sync.Once
	workers atomic.Int32
}

// Initialize sizes the pool to the runtime's processor count.
func (a *Accelerator) Initialize() {
	a.InitializeWorkers(0)
}

// InitializeWorkers sizes the pool to n workers; n <= 0 means one per
// available processor. Only the first initialization takes effect.
func (a *Accelerator) InitializeWorkers(n int) {
	a.once.Do(func() {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		a.workers.Store(int32(n))
	})
}

// Workers reports the fixed pool size, or zero before initialization.
func (a *Accelerator) Workers() int {
	return int(a.workers.Load())
}
