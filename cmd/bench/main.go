package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/suffixtree"
)

type LCPQuerier interface {
	LCP(i, j int) int
}

type variant struct {
	name  string
	build func(a, b string) (LCPQuerier, error)
}

var variants = map[string]variant{
	"generalized": {name: "generalized", build: func(a, b string) (LCPQuerier, error) {
		return suffixtree.BuildGeneralized([]byte(a), []byte(b))
	}},
	"index": {name: "index", build: func(a, b string) (LCPQuerier, error) {
		return suffixtree.NewBuilder(a).SkipNormalization().Build()
	}},
	"index_no_lcp": {name: "index_no_lcp", build: func(a, b string) (LCPQuerier, error) {
		return suffixtree.NewBuilder(a).SkipNormalization().SkipLCP().Build()
	}},
	"suffix_array": {name: "suffix_array", build: func(a, b string) (LCPQuerier, error) {
		tree, err := suffixtree.Build([]byte(a))
		if err != nil {
			return nil, err
		}
		sa := tree.SuffixArray()
		return suffixArrayQuerier(sa), nil
	}},
}

// suffixArrayQuerier only measures extraction; its queries are free.
type suffixArrayQuerier []int

func (suffixArrayQuerier) LCP(i, j int) int { return 0 }

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

func measureBuild(a, b string, build func(a, b string) (LCPQuerier, error)) (time.Duration, uint64, uint64, LCPQuerier) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	q, err := build(a, b)
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, q
}

func measureQuery(q LCPQuerier, pairs [][2]int) time.Duration {
	start := time.Now()
	for _, p := range pairs {
		_ = q.LCP(p[0], p[1])
	}
	return time.Since(start)
}

func runBenchmark(v variant, N, S, Q, runs int) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := func() string {
			b := make([]byte, N)
			for i := range b {
				b[i] = byte(r.Intn(S) + 'a')
			}
			return string(b)
		}
		a, b := text(), text()

		bt, bp, ba, q := measureBuild(a, b, v.build)
		pairs := make([][2]int, Q)
		for i := range pairs {
			pairs[i] = [2]int{r.Intn(N), r.Intn(N)}
		}
		qt := measureQuery(q, pairs)
		fmt.Printf("%s,%d,%d,%d,%.0f,%d,%d,%.0f\n",
			v.name, N, S, Q,
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()))
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Text length N")
	s := flag.Int("s", 4, "Number of distinct letters S")
	q := flag.Int("q", 0, "Number of LCP queries Q")
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

	if *variantName == "" || *n <= 0 || *q < 0 || *s < 1 || *s > 26 {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> -s=<S> -q=<Q> [-runs=<runs>]")
		fmt.Println("Available variants: generalized, index, index_no_lcp, suffix_array")
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *s, *q, *runs)
}
