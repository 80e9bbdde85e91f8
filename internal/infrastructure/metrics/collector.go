package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/asakaida/monban/pkg/cache"
	"github.com/asakaida/monban/pkg/cache/memorycache"
)

// Collector aggregates runtime metrics for the access service:
// per-method gRPC counters and the state of the matrix result cache.
type Collector struct {
	rpcRequests sync.Map // map[string]*uint64 - method -> count
	rpcErrors   sync.Map // map[string]*uint64 - method -> error count
	rpcDuration sync.Map // map[string]*durationValue - method -> total seconds

	// Matrix cache reference (optional)
	cache cache.Cache
}

// durationValue holds an accumulated duration with its own mutex.
type durationValue struct {
	mu           sync.Mutex
	totalSeconds float64
}

// CacheMetrics holds matrix cache performance metrics.
type CacheMetrics struct {
	Hits        uint64
	Misses      uint64
	HitRate     float64
	KeysCurrent int64
	MemoryBytes int64
	Evictions   uint64
}

// RPCMetrics holds per-method request metrics.
type RPCMetrics struct {
	RequestCounts        map[string]uint64
	ErrorCounts          map[string]uint64
	TotalDurationSeconds map[string]float64
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{}
}

// SetCache attaches the matrix result cache so its metrics are exported.
func (c *Collector) SetCache(cache cache.Cache) {
	c.cache = cache
}

// RecordRequest records a gRPC request.
func (c *Collector) RecordRequest(method string) {
	counter := c.getOrCreateCounter(&c.rpcRequests, method)
	atomic.AddUint64(counter, 1)
}

// RecordError records a failed gRPC request.
func (c *Collector) RecordError(method string) {
	counter := c.getOrCreateCounter(&c.rpcErrors, method)
	atomic.AddUint64(counter, 1)
}

// RecordDuration records the duration of a gRPC call in seconds.
func (c *Collector) RecordDuration(method string, durationSeconds float64) {
	val, _ := c.rpcDuration.LoadOrStore(method, &durationValue{})
	dv := val.(*durationValue)

	dv.mu.Lock()
	dv.totalSeconds += durationSeconds
	dv.mu.Unlock()
}

// GetCacheMetrics returns the current matrix cache metrics.
func (c *Collector) GetCacheMetrics() *CacheMetrics {
	if c.cache == nil {
		return &CacheMetrics{}
	}

	m := c.cache.Metrics()
	if m == nil {
		return &CacheMetrics{}
	}

	result := &CacheMetrics{
		Hits:      m.Hits,
		Misses:    m.Misses,
		HitRate:   m.HitRate(),
		Evictions: m.KeysEvicted,
	}

	if memCache, ok := c.cache.(*memorycache.Cache); ok {
		result.KeysCurrent = int64(memCache.Len())
		result.MemoryBytes = memCache.Size()
	}

	return result
}

// GetRPCMetrics returns the current per-method request metrics.
func (c *Collector) GetRPCMetrics() *RPCMetrics {
	result := &RPCMetrics{
		RequestCounts:        make(map[string]uint64),
		ErrorCounts:          make(map[string]uint64),
		TotalDurationSeconds: make(map[string]float64),
	}

	c.rpcRequests.Range(func(key, value interface{}) bool {
		result.RequestCounts[key.(string)] = atomic.LoadUint64(value.(*uint64))
		return true
	})

	c.rpcErrors.Range(func(key, value interface{}) bool {
		result.ErrorCounts[key.(string)] = atomic.LoadUint64(value.(*uint64))
		return true
	})

	c.rpcDuration.Range(func(key, value interface{}) bool {
		dv := value.(*durationValue)
		dv.mu.Lock()
		result.TotalDurationSeconds[key.(string)] = dv.totalSeconds
		dv.mu.Unlock()
		return true
	})

	return result
}

func (c *Collector) getOrCreateCounter(m *sync.Map, key string) *uint64 {
	val, _ := m.LoadOrStore(key, new(uint64))
	return val.(*uint64)
}
