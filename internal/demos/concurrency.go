package demos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"
)

// Every example joins its goroutines before returning, and only the calling
// goroutine writes to w.

func basicGoroutines(w io.Writer) {
	fmt.Fprintln(w, "\n=== Goroutines and WaitGroup ===")
	var wg sync.WaitGroup
	counts := make([]int, 3)
	for i := range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
			counts[i] = i + 1
		}()
	}
	wg.Wait()
	fmt.Fprintf(w, "Spawned goroutines counted: %v\n", counts)
}

func channels(w io.Writer) {
	fmt.Fprintln(w, "\n=== Channels ===")
	ch := make(chan string)
	var wg sync.WaitGroup
	for i := 1; i <= 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch <- fmt.Sprintf("Hello from goroutine %d", i)
		}()
	}
	go func() {
		wg.Wait()
		close(ch)
	}()

	var got []string
	for msg := range ch {
		got = append(got, msg)
	}
	slices.Sort(got)
	for _, msg := range got {
		fmt.Fprintf(w, "Received: %s\n", msg)
	}
}

func sharedState(w io.Writer) {
	fmt.Fprintln(w, "\n=== Shared State (Mutex) ===")
	var (
		mu      sync.Mutex
		counter int
		wg      sync.WaitGroup
	)
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()
	fmt.Fprintf(w, "Final counter value: %d\n", counter)
}

func rwLock(w io.Writer) {
	fmt.Fprintln(w, "\n=== RWMutex ===")
	var (
		mu   sync.RWMutex
		data = []int{1, 2, 3, 4}
		seen = make([]int, 2)
		wg   sync.WaitGroup
	)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.RLock()
			defer mu.RUnlock()
			seen[i] = len(data)
		}()
	}
	wg.Wait()

	wg.Add(1)
	go func() {
		defer wg.Done()
		mu.Lock()
		defer mu.Unlock()
		data = append(data, 5)
	}()
	wg.Wait()
	fmt.Fprintf(w, "Readers saw %v items, writer extended data to %v\n", seen, data)
}

func errGroup(w io.Writer) {
	fmt.Fprintln(w, "\n=== errgroup ===")
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(2)
	squares := make([]int, 5)
	for i := range squares {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			squares[i] = i * i
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "errgroup failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Squares: %v\n", squares)

	failing, _ := errgroup.WithContext(context.Background())
	failing.Go(func() error { return errors.New("worker 3 failed") })
	failing.Go(func() error { return nil })
	fmt.Fprintf(w, "First error wins: %v\n", failing.Wait())
}

func workerPool(w io.Writer) {
	fmt.Fprintln(w, "\n=== Worker Pool ===")
	var (
		mu   sync.Mutex
		done []int
	)
	p := pool.New().WithMaxGoroutines(3)
	for i := range 5 {
		p.Go(func() {
			time.Sleep(time.Millisecond)
			mu.Lock()
			done = append(done, i)
			mu.Unlock()
		})
	}
	p.Wait()
	slices.Sort(done)
	fmt.Fprintf(w, "All jobs completed. Final data: %v\n", done)
}

func concurrency(w io.Writer) {
	basicGoroutines(w)
	channels(w)
	sharedState(w)
	rwLock(w)
	errGroup(w)
	workerPool(w)
	fmt.Fprintln(w)
}
