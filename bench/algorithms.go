package bench

import (
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Built-in sorts. All operate in place via the representation's natural
// total order. Dataset generation never emits NaN, so raw < comparisons are
// consistent for floating-point representations.

const insertionCutoff = 64

func insertionSortRange[T Element](v []T, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		key := v[i]
		j := i
		for j > lo && key < v[j-1] {
			v[j] = v[j-1]
			j--
		}
		v[j] = key
	}
}

func insertionSort[T Element](v []T) {
	insertionSortRange(v, 0, len(v))
}

func selectionSort[T Element](v []T) {
	n := len(v)
	for i := 0; i+1 < n; i++ {
		minI := i
		for j := i + 1; j < n; j++ {
			if v[j] < v[minI] {
				minI = j
			}
		}
		if minI != i {
			v[i], v[minI] = v[minI], v[i]
		}
	}
}

// bubbleSort with early exit when a pass performs no swaps.
func bubbleSort[T Element](v []T) {
	n := len(v)
	if n < 2 {
		return
	}
	swapped := true
	for pass := 0; pass < n-1 && swapped; pass++ {
		swapped = false
		for i := 0; i+1 < n-pass; i++ {
			if v[i+1] < v[i] {
				v[i], v[i+1] = v[i+1], v[i]
				swapped = true
			}
		}
	}
}

// combSort shrinks the comparison gap by 1.3 each pass.
func combSort[T Element](v []T) {
	n := len(v)
	if n < 2 {
		return
	}
	gap := float64(n)
	const shrink = 1.3
	swapped := true
	for gap > 1.0 || swapped {
		gap = math.Floor(gap / shrink)
		if gap < 1.0 {
			gap = 1.0
		}
		igap := int(gap)
		swapped = false
		for i := 0; i+igap < n; i++ {
			j := i + igap
			if v[j] < v[i] {
				v[i], v[j] = v[j], v[i]
				swapped = true
			}
		}
	}
}

// shellSort uses the Ciura gap sequence, extended by a 2.25 growth factor.
func shellSort[T Element](v []T) {
	gaps := []int{1, 4, 10, 23, 57, 132, 301, 701}
	for float64(gaps[len(gaps)-1])*2.25 < float64(len(v)) {
		gaps = append(gaps, int(float64(gaps[len(gaps)-1])*2.25))
	}
	for gi := len(gaps) - 1; gi >= 0; gi-- {
		gap := gaps[gi]
		for i := gap; i < len(v); i++ {
			tmp := v[i]
			j := i
			for j >= gap && tmp < v[j-gap] {
				v[j] = v[j-gap]
				j -= gap
			}
			v[j] = tmp
		}
	}
}

func siftDown[T Element](v []T, lo, hi int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && v[child] < v[child+1] {
			child++
		}
		if !(v[root] < v[child]) {
			return
		}
		v[root], v[child] = v[child], v[root]
		root = child
	}
}

func heapSort[T Element](v []T) {
	n := len(v)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(v, i, n)
	}
	for i := n - 1; i > 0; i-- {
		v[0], v[i] = v[i], v[0]
		siftDown(v, 0, i)
	}
}

// mergeInto merges v[lo:mid] and v[mid:hi] through buf back into v.
func mergeInto[T Element](v, buf []T, lo, mid, hi int) {
	a, b, k := lo, mid, lo
	for a < mid && b < hi {
		if !(v[b] < v[a]) {
			buf[k] = v[a]
			a++
		} else {
			buf[k] = v[b]
			b++
		}
		k++
	}
	k += copy(buf[k:], v[a:mid])
	k += copy(buf[k:], v[b:hi])
	copy(v[lo:hi], buf[lo:hi])
}

// mergeSortOpt is an iterative bottom-up merge sort with one reusable buffer.
func mergeSortOpt[T Element](v []T) {
	n := len(v)
	if n < 2 {
		return
	}
	buf := make([]T, n)
	for width := 1; width < n; width <<= 1 {
		for i := 0; i < n; i += width << 1 {
			mid := min(i+width, n)
			hi := min(i+(width<<1), n)
			if mid < hi {
				mergeInto(v, buf, i, mid, hi)
			}
		}
	}
}

// quicksortHybrid: median-of-three pivot, Hoare partitioning, insertion-sort
// cutoff, recursion into the smaller partition with tail elimination into
// the larger.
func quicksortHybridRange[T Element](v []T, lo, hi int) {
	for hi-lo > insertionCutoff {
		a, b, m := lo, hi-1, lo+(hi-lo)/2
		if v[m] < v[a] {
			v[m], v[a] = v[a], v[m]
		}
		if v[b] < v[m] {
			v[b], v[m] = v[m], v[b]
		}
		if v[m] < v[a] {
			v[m], v[a] = v[a], v[m]
		}
		pivot := v[m]
		i, j := lo-1, hi
		for {
			for {
				i++
				if !(v[i] < pivot) {
					break
				}
			}
			for {
				j--
				if !(pivot < v[j]) {
					break
				}
			}
			if i >= j {
				break
			}
			v[i], v[j] = v[j], v[i]
		}
		if j-lo < hi-(j+1) {
			quicksortHybridRange(v, lo, j+1)
			lo = j + 1
		} else {
			quicksortHybridRange(v, j+1, hi)
			hi = j + 1
		}
	}
	insertionSortRange(v, lo, hi)
}

func quicksortHybrid[T Element](v []T) {
	quicksortHybridRange(v, 0, len(v))
}

// quicksort3Way: Dutch-national-flag partitioning, tuned for low-cardinality
// keys. Smaller partition first, loop on the larger.
func quicksort3WayRange[T Element](v []T, lo, hi int) {
	for hi-lo > insertionCutoff {
		i, lt, gt := lo, lo, hi-1
		pivot := v[lo+(hi-lo)/2]
		for i <= gt {
			switch {
			case v[i] < pivot:
				v[lt], v[i] = v[i], v[lt]
				lt++
				i++
			case pivot < v[i]:
				v[i], v[gt] = v[gt], v[i]
				gt--
			default:
				i++
			}
		}
		leftSize, rightSize := lt-lo, hi-(gt+1)
		if leftSize < rightSize {
			if leftSize > 1 {
				quicksort3WayRange(v, lo, lt)
			}
			lo = gt + 1
		} else {
			if rightSize > 1 {
				quicksort3WayRange(v, gt+1, hi)
			}
			hi = lt
		}
	}
	insertionSortRange(v, lo, hi)
}

func quicksort3Way[T Element](v []T) {
	quicksort3WayRange(v, 0, len(v))
}

// binaryInsertionSortRange inserts each element at the position found by
// binary search; stable.
func binaryInsertionSortRange[T Element](v []T, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		x := v[i]
		left, right := lo, i
		for left < right {
			mid := left + (right-left)>>1
			if !(x < v[mid]) {
				left = mid + 1
			} else {
				right = mid
			}
		}
		copy(v[left+1:i+1], v[left:i])
		v[left] = x
	}
}

// stableMergeRuns merges v[lo:mid] and v[mid:hi] stably, buffering only the
// left run.
func stableMergeRuns[T Element](v []T, lo, mid, hi int, buf *[]T) {
	n1 := mid - lo
	if cap(*buf) < n1 {
		*buf = make([]T, n1)
	}
	b := (*buf)[:n1]
	copy(b, v[lo:mid])
	i, j, k := 0, mid, lo
	for i < n1 && j < hi {
		if !(v[j] < b[i]) {
			v[k] = b[i]
			i++
		} else {
			v[k] = v[j]
			j++
		}
		k++
	}
	copy(v[k:], b[i:n1])
}

// timsortMinrun mirrors Python's minrun computation: take the 6 most
// significant bits of n, rounding up if any lower bit is set.
func timsortMinrun(n int) int {
	r := 0
	for n >= 64 {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

type timsortRun struct {
	base, len int
}

// timsort is the natural-run-aware adaptive merge sort: detect ascending or
// strictly-descending runs, extend short runs to minrun with binary
// insertion sort, and collapse the pending-run stack so run lengths stay
// non-increasing.
func timsort[T Element](v []T) {
	n := len(v)
	if n < 2 {
		return
	}
	minrun := timsortMinrun(n)
	var stack []timsortRun
	var buf []T
	i := 0
	for i < n {
		lo := i
		if i+1 == n {
			i = n
		} else if v[i+1] < v[i] { // descending: find extent and reverse
			j := i + 2
			for j < n && v[j] < v[j-1] {
				j++
			}
			slices.Reverse(v[i:j])
			i = j
		} else {
			j := i + 2
			for j < n && !(v[j] < v[j-1]) {
				j++
			}
			i = j
		}
		runLen := i - lo
		if runLen < minrun {
			end := min(lo+minrun, n)
			binaryInsertionSortRange(v, lo, end)
			runLen = end - lo
			i = end
		}
		stack = append(stack, timsortRun{lo, runLen})
		for len(stack) >= 2 {
			a := &stack[len(stack)-2]
			b := stack[len(stack)-1]
			if a.len > b.len {
				break
			}
			stableMergeRuns(v, a.base, a.base+a.len, b.base+b.len, &buf)
			a.len += b.len
			stack = stack[:len(stack)-1]
		}
	}
	for len(stack) > 1 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a := &stack[len(stack)-1]
		stableMergeRuns(v, a.base, a.base+a.len, b.base+b.len, &buf)
		a.len += b.len
	}
}

// radixSortLSD sorts integral values by 8-bit digits with a stable counting
// pass per byte. Signed types are biased by a sign-bit flip so unsigned
// byte-wise comparison preserves numeric order.
func radixSortLSD[T IntElem](v []T, width uint, signed bool) {
	n := len(v)
	if n < 2 {
		return
	}
	mask := ^uint64(0)
	if width < 64 {
		mask = uint64(1)<<width - 1
	}
	var bias uint64
	if signed {
		bias = uint64(1) << (width - 1)
	}
	a := make([]uint64, n)
	b := make([]uint64, n)
	for i, x := range v {
		a[i] = (uint64(x) & mask) ^ bias
	}
	var count [256]int
	passes := int(width / 8)
	for pass := 0; pass < passes; pass++ {
		shift := uint(pass * 8)
		for i := range count {
			count[i] = 0
		}
		for _, x := range a {
			count[(x>>shift)&0xFF]++
		}
		sum := 0
		for i := range count {
			c := count[i]
			count[i] = sum
			sum += c
		}
		for _, x := range a {
			byteV := (x >> shift) & 0xFF
			b[count[byteV]] = x
			count[byteV]++
		}
		a, b = b, a
	}
	for i := range v {
		v[i] = T(a[i] ^ bias)
	}
}

const parSortMin = 4096

// stdSortPar sorts chunks concurrently, bounded by the thread budget, then
// merges them bottom-up. Falls back to a plain sort for small inputs.
func stdSortPar[T Element](v []T) {
	workers := runtime.GOMAXPROCS(0)
	n := len(v)
	if workers < 2 || n < parSortMin {
		slices.Sort(v)
		return
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			slices.Sort(v[lo:hi])
			return nil
		})
	}
	_ = g.Wait()
	buf := make([]T, n)
	for width := chunk; width < n; width <<= 1 {
		for lo := 0; lo < n; lo += width << 1 {
			mid := min(lo+width, n)
			hi := min(lo+(width<<1), n)
			if mid < hi {
				mergeInto(v, buf, lo, mid, hi)
			}
		}
	}
}
