package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/suffixindex"
)

type variant struct {
	name   string
	config func(*suffixindex.IndexBuilder) *suffixindex.IndexBuilder
}

var variants = map[string]variant{
	"full": {name: "full", config: func(b *suffixindex.IndexBuilder) *suffixindex.IndexBuilder { return b }},
	"no_lcp": {name: "no_lcp", config: func(b *suffixindex.IndexBuilder) *suffixindex.IndexBuilder {
		return b.SkipLCP()
	}},
	"folded": {name: "folded", config: func(b *suffixindex.IndexBuilder) *suffixindex.IndexBuilder {
		return b.FoldCase()
	}},
}

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(text []byte, config func(*suffixindex.IndexBuilder) *suffixindex.IndexBuilder) (time.Duration, uint64, uint64, *suffixindex.Index) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	builder := config(suffixindex.NewBuilder(text))
	idx, err := builder.Build()
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, idx
}

func measureQuery(idx *suffixindex.Index, patterns [][]byte) (time.Duration, uint64, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	for _, p := range patterns {
		_ = idx.Find(p)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc
}

func measureLRS(idx *suffixindex.Index) (time.Duration, int) {
	start := time.Now()
	rep := idx.LongestRepeatedSubstring()
	return time.Since(start), len(rep)
}

func runBenchmark(v variant, N, P, Q, A, runs int) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := make([]byte, N)
		for i := range text {
			text[i] = byte(r.Intn(A) + 'a')
		}

		bt, bp, ba, idx := measureBuild(text, v.config)

		patterns := make([][]byte, Q)
		for i := range patterns {
			start := r.Intn(N - P + 1)
			patterns[i] = text[start : start+P]
		}
		qt, qp, qa := measureQuery(idx, patterns)
		lt, ll := measureLRS(idx)

		fmt.Printf("%s,%d,%d,%d,%d,%.0f,%d,%d,%.0f,%d,%d,%.0f,%d\n",
			v.name, N, P, Q, A,
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa,
			float64(lt.Nanoseconds()), ll)
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Text length N")
	p := flag.Int("p", 0, "Pattern length P")
	q := flag.Int("q", 0, "Number of queries Q")
	a := flag.Int("a", 26, "Alphabet size A (1-26)")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *n <= 0 || *p <= 0 || *q <= 0 || *a <= 0 || *a > 26 || *p > *n {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> -p=<P> -q=<Q> [-a=<A>] [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *p, *q, *a, *runs)
}
