package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jgallagher/gosaca"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/viniciusth/dc3"
	"github.com/viniciusth/dc3/internal/oracle"
)

var (
	app = kingpin.New("bench", "Benchmark DC3 suffix array construction against an SA-IS baseline")

	inputKind  = app.Flag("input", "Kind of input text").Default(inputRandom).Enum(inputKinds...)
	file       = app.Flag("file", "Input file, used with --input=file").ExistingFile()
	length     = app.Flag("length", "Length of the generated text; input files are truncated to it").Short('n').Default("1000000").Int()
	alphabet   = app.Flag("alphabet", "Largest symbol value of random texts").Default("255").Int()
	runs       = app.Flag("runs", "Number of runs per algorithm").Default("3").Int()
	seed       = app.Flag("seed", "Seed of the input generator").Default("1").Int64()
	verify     = app.Flag("verify", "Check every suffix array produced").Bool()
	cpuprofile = app.Flag("cpuprofile", "Write CPU profile to file").String()
)

type algorithm struct {
	name  string
	build func(in *input) ([]int, error)
}

var algorithms = []algorithm{
	{name: "dc3", build: func(in *input) ([]int, error) {
		if in.bytes != nil {
			return dc3.BuildBytes(in.bytes)
		}
		return dc3.Build(in.symbols, in.k)
	}},
	{name: "sais", build: func(in *input) ([]int, error) {
		if in.bytes == nil {
			return nil, nil
		}
		sa := make([]int, len(in.bytes))
		ws := &gosaca.WorkSpace{}
		ws.ComputeSuffixArray(in.bytes, sa)
		return sa, nil
	}},
}

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
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
	<-mm.done
	return mm.maxAlloc
}

type result struct {
	algorithm string
	run       int
	elapsed   time.Duration
	peak      uint64
	skipped   bool
}

func measure(a algorithm, in *input, run int) (result, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	sa, err := a.build(in)
	elapsed := time.Since(start)
	peak := mm.Stop()
	if err != nil {
		return result{}, errors.Wrapf(err, "%s run %d", a.name, run)
	}
	if sa == nil {
		return result{algorithm: a.name, run: run, skipped: true}, nil
	}
	if *verify {
		if err := oracle.Check(in.symbols, sa); err != nil {
			return result{}, errors.Wrapf(err, "%s run %d", a.name, run)
		}
	}
	return result{algorithm: a.name, run: run, elapsed: elapsed, peak: peak}, nil
}

func report(in *input, results []result) {
	p := message.NewPrinter(language.English)
	fmt.Println(p.Sprintf("input %s: %d symbols, alphabet [0, %d]", in.name, len(in.symbols), in.k))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Algorithm", "Run", "Time", "Throughput", "Peak heap"})
	for _, r := range results {
		if r.skipped {
			table.Append([]string{r.algorithm, strconv.Itoa(r.run), "skipped", "", ""})
			continue
		}
		rate := float64(len(in.symbols)) / r.elapsed.Seconds()
		table.Append([]string{
			r.algorithm,
			strconv.Itoa(r.run),
			r.elapsed.Round(time.Microsecond).String(),
			p.Sprintf("%.0f sym/s", rate),
			humanize.IBytes(r.peak),
		})
	}
	table.Render()
}

func run() error {
	if *runs <= 0 {
		return errors.Errorf("--runs must be positive, got %d", *runs)
	}
	if *inputKind == inputFile && *file == "" {
		return errors.New("--input=file requires --file")
	}
	if *inputKind != inputFile && *length < 2 {
		return errors.Errorf("--length must be at least 2, got %d", *length)
	}
	if *alphabet < 0 {
		return errors.Errorf("--alphabet must not be negative, got %d", *alphabet)
	}

	in, err := generateInput(*inputKind, *length, *alphabet, *seed, *file)
	if err != nil {
		return err
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return errors.Wrap(err, "could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	var results []result
	for _, a := range algorithms {
		for i := 0; i < *runs; i++ {
			r, err := measure(a, in, i)
			if err != nil {
				return err
			}
			results = append(results, r)
			if r.skipped {
				break
			}
		}
	}
	report(in, results)
	return nil
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bench: %+v\n", err)
		os.Exit(1)
	}
}
