package demos

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sort"
	"unsafe"
)

func array(w io.Writer) {
	fmt.Fprintln(w, "Arrays")
	numbers := [5]int{1, 2, 3, 4, 5}
	var zeros [5]int
	fmt.Fprintf(w, "Simple array: %v\n", numbers)
	fmt.Fprintf(w, "Array filled with zeros: %v\n", zeros)
	fmt.Fprintf(w, "Length: %d, size in bytes: %d\n", len(numbers), unsafe.Sizeof(numbers))
	fmt.Fprintf(w, "First: %d, Last: %d\n", numbers[0], numbers[len(numbers)-1])

	copyOf := numbers
	copyOf[2] = 10
	fmt.Fprintf(w, "Arrays are values: original %v, copy %v\n", numbers, copyOf)

	sortable := [5]int{5, 2, 8, 1, 9}
	slices.Sort(sortable[:])
	fmt.Fprintf(w, "Sorted: %v\n", sortable)
	slices.Reverse(sortable[:])
	fmt.Fprintf(w, "Reversed: %v\n", sortable)

	fmt.Fprintf(w, "Slice [1:4]: %v\n", numbers[1:4])
	left, right := numbers[:3], numbers[3:]
	fmt.Fprintf(w, "Split at 3: Left: %v, Right: %v\n", left, right)
	fmt.Fprintf(w, "Contains 2: %v, index of 4: %d\n", slices.Contains(numbers[:], 2), slices.Index(numbers[:], 4))

	matrix := [3][3]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	fmt.Fprintf(w, "2D array (matrix): %v\n", matrix)
	a1, a2, a3 := [3]int{1, 2, 3}, [3]int{1, 2, 3}, [3]int{1, 2, 4}
	fmt.Fprintf(w, "a1 == a2: %v, a1 == a3: %v\n\n", a1 == a2, a1 == a3)
}

func vector(w io.Writer) {
	fmt.Fprintln(w, "Vectors (slices)")
	withCap := make([]int, 0, 10)
	fmt.Fprintf(w, "len=%d cap=%d\n", len(withCap), cap(withCap))
	pairs := [][2]int{{1, 2}, {3, 4}, {5, 6}}
	fmt.Fprintf(w, "Tuple slice: %v\n", pairs)

	v := []int{1}
	v = append(v, 2, 3, 4)
	last := v[len(v)-1]
	v = v[:len(v)-1]
	fmt.Fprintf(w, "Popped: %d\n", last)
	v = slices.Insert(v, 1, 5)
	v = slices.Delete(v, 1, 2)
	fmt.Fprintf(w, "Slice: %v\n", v[1:3])

	v = []int{1, 2, 3, 4, 5}
	drained := slices.Clone(v[1:3])
	v = slices.Delete(v, 1, 3)
	fmt.Fprintf(w, "Drained: %v, left: %v\n", drained, v)
	v = slices.DeleteFunc([]int{2, 2, 4, 5, 6, 6}, func(x int) bool { return x%2 != 0 })
	v = slices.Compact(v)
	for i := 0; i+2 <= len(v); i++ {
		fmt.Fprintf(w, "Window: %v\n", v[i:i+2])
	}
	for i := 0; i < len(v); i += 2 {
		fmt.Fprintf(w, "Chunk: %v\n", v[i:min(i+2, len(v))])
	}

	big := make([]int, 0, 1000)
	for i := 0; i < 1000; i++ {
		big = append(big, i)
	}
	sum := 0
	for _, x := range big {
		sum += x
	}
	fmt.Fprintf(w, "Sum: %d\n\n", sum)
}

func hashmap(w io.Writer) {
	fmt.Fprintln(w, "Hashmaps")
	m := map[string]int{"one": 1, "two": 2}
	if _, ok := m["one"]; ok {
		delete(m, "one")
	}
	if _, ok := m["two"]; ok {
		fmt.Fprintln(w, "Contains key 'two'")
	}

	counts := make(map[string]int)
	for _, word := range []string{"go", "rust", "go", "zig", "go"} {
		counts[word]++
	}
	// map iteration order is random; sort for stable output
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(w, "%s: %d\n", k, counts[k])
	}

	type key struct {
		ID   uint64
		Name string
	}
	byKey := map[key]string{{1, "a"}: "first", {2, "b"}: "second"}
	fmt.Fprintf(w, "Struct key lookup: %s\n\n", byKey[key{2, "b"}])
}

func btreemap(w io.Writer) {
	fmt.Fprintln(w, "Ordered maps")
	m := map[int]string{3: "Three", 1: "One", 2: "Two"}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%d: %s\n", k, m[k])
	}
	fmt.Fprintf(w, "First: %d: %s\n", keys[0], m[keys[0]])

	big := make(map[int]string, 1000)
	for i := 0; i < 1000; i++ {
		big[i] = fmt.Sprint(i)
	}
	sorted := slices.Sorted(maps.Keys(big))
	lo, _ := slices.BinarySearch(sorted, 100)
	hi, _ := slices.BinarySearch(sorted, 200)
	rangeSum := 0
	for _, k := range sorted[lo:hi] {
		rangeSum += k
	}
	fmt.Fprintf(w, "Range sum: %d\n\n", rangeSum)
}

type set map[int]struct{}

func setOf(xs ...int) set {
	s := make(set, len(xs))
	for _, x := range xs {
		s[x] = struct{}{}
	}
	return s
}

func (s set) sorted() []int { return slices.Sorted(maps.Keys(s)) }

func hashset(w io.Writer) {
	fmt.Fprintln(w, "Hashsets")
	s := setOf(1, 2)
	if _, ok := s[1]; ok {
		fmt.Fprintln(w, "Contains 1")
	}
	delete(s, 1)

	s1, s2 := setOf(1, 2), setOf(2, 3)
	union, inter, diff, sym := set{}, set{}, set{}, set{}
	for x := range s1 {
		union[x] = struct{}{}
		if _, ok := s2[x]; ok {
			inter[x] = struct{}{}
		} else {
			diff[x] = struct{}{}
			sym[x] = struct{}{}
		}
	}
	for x := range s2 {
		union[x] = struct{}{}
		if _, ok := s1[x]; !ok {
			sym[x] = struct{}{}
		}
	}
	fmt.Fprintf(w, "union=%v intersection=%v difference=%v symmetric=%v\n\n",
		union.sorted(), inter.sorted(), diff.sorted(), sym.sorted())
}
