// main.go: Profiler for the Daedalus string-builder cache
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/daedalus"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Configuration constants for the profiler
const (
	duration     = 5 * time.Second
	workers      = 8
	fragmentPool = 64  // Distinct path fragments assembled per worker
	segmentCount = 4   // Fragments per assembled string
	oversizeRate = 100 // One in N assemblies exceeds the retention ceiling
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	printHostReport()

	cpuFile, err := os.Create("cpu.prof")
	if err == nil {
		_ = pprof.StartCPUProfile(cpuFile)
		defer func() {
			pprof.StopCPUProfile()
			// Ignore close error for profiling tool
			_ = cpuFile.Close()
		}()
	}

	fmt.Println("[BENCHMARK] Cached workload (per-worker BuilderCache)")
	cachedStat, cachedOps := runWorkload(true)

	fmt.Println("[BENCHMARK] Baseline workload (fresh allocation per string)")
	freshStat, freshOps := runWorkload(false)

	runtime.ReadMemStats(&memStats)

	fmt.Println("--- Results ---")
	fmt.Printf("Cached: ops=%d avg=%v min=%v max=%v\n", cachedOps, cachedStat.Avg(), cachedStat.Min, cachedStat.Max)
	fmt.Printf("Fresh:  ops=%d avg=%v min=%v max=%v\n", freshOps, freshStat.Avg(), freshStat.Min, freshStat.Max)
	fmt.Printf("Cached ops/sec: %.2f\n", float64(cachedOps)/duration.Seconds())
	fmt.Printf("Fresh ops/sec:  %.2f\n", float64(freshOps)/duration.Seconds())
	fmt.Printf("Heap alloc: %d MB, GCs: %d, GC fraction: %.2f%%\n",
		memStats.HeapAlloc/1024/1024, memStats.NumGC, memStats.GCCPUFraction*100)

	exportCSV(cachedStat, freshStat, cachedOps, freshOps)
	exportJSON(cachedStat, freshStat, cachedOps, freshOps)
}

// printHostReport describes the machine the numbers were taken on.
func printHostReport() {
	fmt.Println("[HOST] Daedalus builder-cache profiler")
	fmt.Printf("[HOST] Architecture: compiled=%s native=%s\n",
		daedalus.CurrentArchitecture(), daedalus.NativeArchitecture())

	if counts, err := cpu.Counts(true); err == nil {
		fmt.Printf("[HOST] Logical CPUs: %d\n", counts)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("[HOST] Memory: %d MB total, %.1f%% used\n",
			vm.Total/1024/1024, vm.UsedPercent)
	}
}

// runWorkload drives the string-assembly workers for the configured duration
// and returns the aggregated latency statistics and operation count.
func runWorkload(useCache bool) (opStat, int64) {
	var aggregate opStat
	var aggregateMu sync.Mutex
	var totalOps int64
	var wg sync.WaitGroup
	stop := make(chan struct{})

	fmt.Printf("[BENCHMARK] Starting %d workers for %v\n", workers, duration)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			// Use math/rand for workload shaping - cryptographic security not needed
			// nosec G404 - This is a performance profiler, not a security-critical application
			localRand := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
			var cache daedalus.BuilderCache
			var local opStat
			ops := 0
			for {
				select {
				case <-stop:
					aggregateMu.Lock()
					aggregate.Merge(&local)
					aggregateMu.Unlock()
					fmt.Printf("[WORKER] Worker %d finished with %d operations\n", id, ops)
					return
				default:
					oversize := localRand.Intn(oversizeRate) == 0
					start := time.Now()
					if useCache {
						assembleCached(&cache, localRand, oversize)
					} else {
						assembleFresh(localRand, oversize)
					}
					local.Record(time.Since(start))
					atomic.AddInt64(&totalOps, 1)
					ops++
				}
			}
		}(i)
	}

	time.Sleep(duration)
	close(stop)
	wg.Wait()

	return aggregate, totalOps
}

// assembleCached builds one string through the worker's BuilderCache.
func assembleCached(cache *daedalus.BuilderCache, r *rand.Rand, oversize bool) string {
	hint := 64
	if oversize {
		hint = daedalus.MaxBuilderSize * 2
	}
	b := cache.Acquire(hint)
	writeSegments(b, r, oversize)
	return cache.ReleaseToString(b)
}

// assembleFresh builds one string with a throwaway buffer, the pattern the
// cache exists to avoid.
func assembleFresh(r *rand.Rand, oversize bool) string {
	b := new(bytes.Buffer)
	b.Grow(64)
	writeSegments(b, r, oversize)
	return b.String()
}

// writeSegments assembles a representative build-tool path into b.
func writeSegments(b *bytes.Buffer, r *rand.Rand, oversize bool) {
	b.WriteString("out/release")
	for s := 0; s < segmentCount; s++ {
		fmt.Fprintf(b, "/fragment_%d", r.Intn(fragmentPool))
	}
	if oversize {
		for b.Len() <= daedalus.MaxBuilderSize {
			b.WriteString("/deeply/nested/generated/component")
		}
	}
}

func exportCSV(cached, fresh opStat, cachedOps, freshOps int64) {
	csvFile, err := os.Create("daedalus_results.csv")
	if err != nil {
		return
	}
	defer csvFile.Close()
	writer := csv.NewWriter(csvFile)
	defer writer.Flush()

	// Write CSV data - ignore write errors for profiling tool
	_ = writer.Write([]string{"metric", "value"})
	_ = writer.Write([]string{"cached_ops", fmt.Sprintf("%d", cachedOps)})
	_ = writer.Write([]string{"fresh_ops", fmt.Sprintf("%d", freshOps)})
	_ = writer.Write([]string{"cached_avg_ns", fmt.Sprintf("%d", cached.Avg().Nanoseconds())})
	_ = writer.Write([]string{"fresh_avg_ns", fmt.Sprintf("%d", fresh.Avg().Nanoseconds())})
	_ = writer.Write([]string{"cached_ops_per_sec", fmt.Sprintf("%.2f", float64(cachedOps)/duration.Seconds())})
	_ = writer.Write([]string{"fresh_ops_per_sec", fmt.Sprintf("%.2f", float64(freshOps)/duration.Seconds())})
	_ = writer.Write([]string{"heap_alloc_mb", fmt.Sprintf("%d", memStats.HeapAlloc/1024/1024)})
	_ = writer.Write([]string{"gc_count", fmt.Sprintf("%d", memStats.NumGC)})
	_ = writer.Write([]string{"gc_fraction", fmt.Sprintf("%.2f", memStats.GCCPUFraction*100)})
}

func exportJSON(cached, fresh opStat, cachedOps, freshOps int64) {
	jsonData := map[string]interface{}{
		"cached_ops":         cachedOps,
		"fresh_ops":          freshOps,
		"cached_avg_ns":      cached.Avg().Nanoseconds(),
		"cached_min_ns":      cached.Min.Nanoseconds(),
		"cached_max_ns":      cached.Max.Nanoseconds(),
		"fresh_avg_ns":       fresh.Avg().Nanoseconds(),
		"fresh_min_ns":       fresh.Min.Nanoseconds(),
		"fresh_max_ns":       fresh.Max.Nanoseconds(),
		"cached_ops_per_sec": float64(cachedOps) / duration.Seconds(),
		"fresh_ops_per_sec":  float64(freshOps) / duration.Seconds(),
		"heap_alloc_mb":      memStats.HeapAlloc / 1024 / 1024,
		"gc_count":           memStats.NumGC,
		"gc_fraction":        memStats.GCCPUFraction * 100,
	}
	jsonFile, err := os.Create("daedalus_results.json")
	if err != nil {
		return
	}
	defer jsonFile.Close()
	encoder := json.NewEncoder(jsonFile)
	encoder.SetIndent("", "  ")
	// Ignore encode error for profiling tool
	_ = encoder.Encode(jsonData)
}

// Global memory statistics for reporting
var memStats runtime.MemStats

// opStat keeps track of latency metrics for an operation type
type opStat struct {
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
	Count int64
}

// Record registers a single operation latency into the statistics
func (s *opStat) Record(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Count++
}

// Merge folds another statistics block into this one
func (s *opStat) Merge(other *opStat) {
	if other.Count == 0 {
		return
	}
	if s.Count == 0 || other.Min < s.Min {
		s.Min = other.Min
	}
	if other.Max > s.Max {
		s.Max = other.Max
	}
	s.Total += other.Total
	s.Count += other.Count
}

// Avg returns the average latency for the recorded operations
func (s *opStat) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return time.Duration(int64(s.Total) / s.Count)
}
