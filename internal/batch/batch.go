package batch

import (
	"runtime"
	"sync"

	"github.com/flarebyte/salute/internal/greeter"
)

// Result is the outcome of greeting a single name. Index is the position of
// the name in the input slice.
type Result struct {
	Index int
	Name  string
	Line  string
	Err   error
}

// Workers returns the requested worker count or a sane default.
func Workers(n int) int {
	if n < 1 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Run greets every name concurrently and returns the results in input order.
// Sharing g across workers is safe because a Greeter is immutable. A failed
// name produces a Result with Err set; it never aborts the rest of the batch.
func Run(g greeter.Greeter, names []string, workers int) []Result {
	results := make([]Result, len(names))
	if len(names) == 0 {
		return results
	}
	workers = Workers(workers)
	if workers > len(names) {
		workers = len(names)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				line, err := g.Greet(names[i])
				results[i] = Result{Index: i, Name: names[i], Line: line, Err: err}
			}
		}()
	}
	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
