package demos

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// countTo yields n, n-1, ..., 1.
func countTo(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := n; i > 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

func mapSeq[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func filterSeq[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

func fold[T, A any](seq iter.Seq[T], acc A, f func(A, T) A) A {
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

func iterClosure(w io.Writer) {
	fmt.Fprintln(w, "\nRunning closure examples...")
	add := func(x, y int) int { return x + y }
	multiplier := 2
	multiply := func(x int) int { return x * multiplier }
	n := 0
	increment := func() int {
		n++
		return n
	}
	increment()
	fmt.Fprintf(w, "add(2,3)=%d multiply(5)=%d increment()=%d\n", add(2, 3), multiply(5), increment())

	v := []int{1, 2, 3}
	push := func() { v = append(v, 4) }
	push()
	fmt.Fprintf(w, "Captured and mutated: %v\n", v)

	fmt.Fprintln(w, "\nRunning iterator examples...")
	fmt.Fprintf(w, "countTo(3): %v\n", slices.Collect(countTo(3)))

	numbers := []int{1, 2, 3, 4, 5}
	doubled := slices.Collect(mapSeq(slices.Values(numbers), func(x int) int { return x * 2 }))
	even := slices.Collect(filterSeq(slices.Values(numbers), func(x int) bool { return x%2 == 0 }))
	sum := fold(slices.Values(numbers), 0, func(acc, x int) int { return acc + x })
	fmt.Fprintf(w, "doubled=%v even=%v sum=%d\n", doubled, even, sum)

	combined := slices.Concat(numbers, []int{6, 7})
	fmt.Fprintf(w, "chained=%v\n", combined)
	for i, x := range slices.All(numbers[:2]) {
		fmt.Fprintf(w, "enumerate %d:%d\n", i, x)
	}

	xs, ys := []int{1, 2, 3}, []int{4, 5, 6}
	zipped := make([][2]int, 0, len(xs))
	for i := range min(len(xs), len(ys)) {
		zipped = append(zipped, [2]int{xs[i], ys[i]})
	}
	fmt.Fprintf(w, "zipped=%v\n", zipped)

	var flat []int
	for _, inner := range [][]int{{1, 2}, {3, 4}} {
		flat = append(flat, inner...)
	}
	fmt.Fprintf(w, "flattened=%v\n", flat)

	var oneToTen []int
	for i := range 10 {
		oneToTen = append(oneToTen, i+1)
	}
	fmt.Fprintf(w, "skip(2).take(3)=%v\n", oneToTen[2:5])
	fmt.Fprintln(w, "\nAll examples completed successfully!")
	fmt.Fprintln(w)
}
