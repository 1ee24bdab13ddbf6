// Package batch parses many inputs concurrently while keeping track of the
// order they arrived in.
package batch

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"sort"
	"sync"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/parseint/internal/logging"
	"github.com/Philanthropists/parseint/pkg/intparse"
)

var Error = errs.Class("batch")

const maxLineSize = 1 << 20

type ParseFunc func(string) intparse.Outcome

type Item struct {
	Index   int
	Input   string
	Outcome intparse.Outcome
}

type job struct {
	index int
	input string
}

// Ensures that the goroutine is finished on done being closed
func orDone[T any](done <-chan struct{}, c <-chan T) <-chan T {
	stream := make(chan T)

	go func() {
		defer close(stream)

		for {
			select {
			case <-done:
				return
			case v, ok := <-c:
				if !ok {
					return
				}
				select {
				case stream <- v:
				case <-done:
				}
			}
		}
	}()

	return stream
}

// Strings streams inputs in order until they run out or ctx is done.
func Strings(ctx context.Context, inputs []string) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		for _, in := range inputs {
			select {
			case <-ctx.Done():
				return
			case out <- in:
			}
		}
	}()

	return out
}

// Lines streams the lines of r. Only the line terminator is removed, so
// surrounding whitespace reaches the parser untouched. A read error, if any,
// is delivered on the second channel once the lines channel is closed.
func Lines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer close(out)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case out <- scanner.Text():
			}
		}

		if err := scanner.Err(); err != nil {
			errc <- Error.Wrap(err)
		}
	}()

	return out, errc
}

func enumerate(done <-chan struct{}, in <-chan string) <-chan job {
	out := make(chan job)

	go func() {
		defer close(out)

		i := 0
		for input := range orDone(done, in) {
			select {
			case <-done:
				return
			case out <- job{index: i, input: input}:
			}
			i++
		}
	}()

	return out
}

// Parse parses every input from in using workers goroutines. Items come out
// in completion order; Index records the arrival order. A non-positive
// workers value means one per CPU.
func Parse(ctx context.Context, workers int, in <-chan string, parse ParseFunc) <-chan Item {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if parse == nil {
		parse = intparse.ParseInt
	}

	log := logging.FromContext(ctx)
	done := ctx.Done()
	jobs := enumerate(done, in)
	out := make(chan Item, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			for j := range orDone(done, jobs) {
				item := Item{Index: j.index, Input: j.input, Outcome: parse(j.input)}
				log.Debug("parsed input",
					logging.Int("index", item.Index),
					logging.String("input", item.Input),
					logging.Outcome(item.Outcome),
				)

				select {
				case <-done:
					return
				case out <- item:
				}
			}
		}()
	}

	go func() {
		defer close(out)
		wg.Wait()
	}()

	return out
}

// Collect drains items and returns them sorted by Index. If ctx ends first
// the items gathered so far are returned with the context error.
func Collect(ctx context.Context, items <-chan Item) ([]Item, Summary, error) {
	var (
		all     []Item
		summary Summary
	)

	for item := range items {
		all = append(all, item)
		summary.Add(item.Outcome)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Index < all[j].Index
	})

	if err := ctx.Err(); err != nil {
		return all, summary, Error.Wrap(err)
	}

	return all, summary, nil
}

// Run parses inputs and collects the ordered results.
func Run(ctx context.Context, workers int, inputs []string, parse ParseFunc) ([]Item, Summary, error) {
	return Collect(ctx, Parse(ctx, workers, Strings(ctx, inputs), parse))
}
