package bench

import (
	"cmp"
	"slices"
)

// SortFunc sorts a buffer in place, ascending.
type SortFunc[T Element] func([]T)

// Algorithm is one registry entry: a name bound to an in-place sort callable.
type Algorithm[T Element] struct {
	Name string
	Run  SortFunc[T]
}

// buildRegistry assembles the built-in catalog for one element type, in
// stable iteration order. Colliding names are never deduplicated: the
// registry is a plain ordered list, and later plugin entries with the same
// name coexist as distinct rows.
func buildRegistry[T Element]() []Algorithm[T] {
	regs := []Algorithm[T]{
		{"std_sort", func(v []T) { slices.Sort(v) }},
		{"std_stable_sort", func(v []T) { slices.SortStableFunc(v, cmp.Compare) }},
		{"std_sort_par", stdSortPar[T]},
		{"heap_sort", heapSort[T]},
		{"merge_sort_opt", mergeSortOpt[T]},
		{"insertion_sort", insertionSort[T]},
		{"selection_sort", selectionSort[T]},
		{"bubble_sort", bubbleSort[T]},
		{"comb_sort", combSort[T]},
		{"shell_sort", shellSort[T]},
		{"timsort", timsort[T]},
		{"quicksort_hybrid", quicksortHybrid[T]},
		{"quicksort_3way", quicksort3Way[T]},
	}

	var zero T
	switch any(zero).(type) {
	case int32:
		regs = append(regs, Algorithm[T]{"radix_sort_lsd", func(v []T) { radixSortLSD(any(v).([]int32), 32, true) }})
	case uint32:
		regs = append(regs, Algorithm[T]{"radix_sort_lsd", func(v []T) { radixSortLSD(any(v).([]uint32), 32, false) }})
	case int64:
		regs = append(regs, Algorithm[T]{"radix_sort_lsd", func(v []T) { radixSortLSD(any(v).([]int64), 64, true) }})
	case uint64:
		regs = append(regs, Algorithm[T]{"radix_sort_lsd", func(v []T) { radixSortLSD(any(v).([]uint64), 64, false) }})
	case float32:
		regs = append(regs, Algorithm[T]{"radix_sort_fkey", func(v []T) { radixSortFKey32(any(v).([]float32)) }})
	case float64:
		regs = append(regs, Algorithm[T]{"radix_sort_fkey", func(v []T) { radixSortFKey64(any(v).([]float64)) }})
	}
	return regs
}

func listFor[T Element](paths []string) []string {
	regs := buildRegistry[T]()
	if len(paths) > 0 {
		handles := loadPluginsInto(paths, &regs)
		defer closePlugins(handles)
	}
	names := make([]string, 0, len(regs))
	for _, a := range regs {
		names = append(names, a.Name)
	}
	return names
}

// ListAlgorithms returns the built-in algorithm names for one element type.
func ListAlgorithms(t ElemType) []string {
	return ListAlgorithmsWithPlugins(t, nil)
}

// ListAlgorithmsWithPlugins additionally loads the given plugin libraries
// transiently for discovery; every handle is closed before returning.
// String keys have no plugin support.
func ListAlgorithmsWithPlugins(t ElemType, paths []string) []string {
	switch t {
	case ElemU32:
		return listFor[uint32](paths)
	case ElemI64:
		return listFor[int64](paths)
	case ElemU64:
		return listFor[uint64](paths)
	case ElemF32:
		return listFor[float32](paths)
	case ElemF64:
		return listFor[float64](paths)
	case ElemStr:
		return listFor[string](nil)
	default:
		return listFor[int32](paths)
	}
}
