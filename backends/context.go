package backends

import (
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/gomlx/mathcore/internal/workerspool"
	"k8s.io/klog/v2"
)

// DeviceNum represents which device executes an operation.
// It's up to the backend to interpret it.
type DeviceNum int

// MATHCORE_PARALLELISM is the environment variable with the default parallelism of new contexts.
// 0 disables parallelism, -1 makes it unlimited. If not set, runtime.NumCPU() is used.
//
// It is overridden by WithParallelism.
const MATHCORE_PARALLELISM = "MATHCORE_PARALLELISM"

// Context is the execution context of operations: the device, the random number source and the workers pool
// used to split the work of an operation.
//
// A Context is created once and reused by many operation calls. Operations borrow it for the duration of the
// call, and only mutate it by advancing the state of its random source.
//
// A Context is not safe for concurrent use: operations issued concurrently should use different contexts.
// Ordering between operations on different contexts touching the same Buffer is the caller's responsibility.
type Context struct {
	deviceNum DeviceNum
	seed      uint64
	source    *rand.PCG
	random    *rand.Rand
	pool      *workerspool.Pool
}

// ContextOption configures a new Context. See NewContext.
type ContextOption func(ctx *Context)

// WithSeed sets the seed of the context random source, making random operations reproducible.
func WithSeed(seed uint64) ContextOption {
	return func(ctx *Context) {
		ctx.seed = seed
	}
}

// WithDevice selects the device operations should execute on.
func WithDevice(deviceNum DeviceNum) ContextOption {
	return func(ctx *Context) {
		ctx.deviceNum = deviceNum
	}
}

// WithParallelism sets the maximum number of extra goroutines an operation may use.
// 0 disables parallelism, and -1 makes it unlimited.
func WithParallelism(maxParallelism int) ContextOption {
	return func(ctx *Context) {
		ctx.pool = workerspool.NewWithParallelism(maxParallelism)
	}
}

// NewContext creates a new execution context.
//
// Without WithSeed, the random source is seeded randomly.
func NewContext(options ...ContextOption) *Context {
	ctx := &Context{seed: rand.Uint64()}
	for _, option := range options {
		option(ctx)
	}
	if ctx.pool == nil {
		ctx.pool = defaultPool()
	}
	ctx.source = rand.NewPCG(ctx.seed, ctx.seed^0x9E3779B97F4A7C15)
	ctx.random = rand.New(ctx.source)
	klog.V(1).Infof("backends.NewContext: device=%d, seed=%d, parallelism=%d",
		ctx.deviceNum, ctx.seed, ctx.pool.MaxParallelism())
	return ctx
}

func defaultPool() *workerspool.Pool {
	if value, found := os.LookupEnv(MATHCORE_PARALLELISM); found {
		parallelism, err := strconv.Atoi(value)
		if err == nil {
			return workerspool.NewWithParallelism(parallelism)
		}
		klog.Warningf("Invalid value %q for $%s, using default parallelism: %v", value, MATHCORE_PARALLELISM, err)
	}
	return workerspool.New()
}

// DeviceNum returns the device selected for the context.
func (ctx *Context) DeviceNum() DeviceNum {
	return ctx.deviceNum
}

// Seed returns the seed used to initialize the random source.
func (ctx *Context) Seed() uint64 {
	return ctx.seed
}

// Source returns the random source owned by the context.
func (ctx *Context) Source() rand.Source {
	return ctx.source
}

// Rand returns a random number generator backed by the context random source.
func (ctx *Context) Rand() *rand.Rand {
	return ctx.random
}

// Pool returns the workers pool used to parallelize operations.
func (ctx *Context) Pool() *workerspool.Pool {
	return ctx.pool
}
