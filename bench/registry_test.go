package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var comparisonCatalog = []string{
	"std_sort", "std_stable_sort", "std_sort_par", "heap_sort",
	"merge_sort_opt", "insertion_sort", "selection_sort", "bubble_sort",
	"comb_sort", "shell_sort", "timsort", "quicksort_hybrid", "quicksort_3way",
}

func TestBuildRegistry_IntTypesIncludeRadixLSD(t *testing.T) {
	want := append(append([]string{}, comparisonCatalog...), "radix_sort_lsd")
	assert.Equal(t, want, ListAlgorithms(ElemI32))
	assert.Equal(t, want, ListAlgorithms(ElemU32))
	assert.Equal(t, want, ListAlgorithms(ElemI64))
	assert.Equal(t, want, ListAlgorithms(ElemU64))
}

func TestBuildRegistry_FloatTypesIncludeRadixFKey(t *testing.T) {
	want := append(append([]string{}, comparisonCatalog...), "radix_sort_fkey")
	assert.Equal(t, want, ListAlgorithms(ElemF32))
	assert.Equal(t, want, ListAlgorithms(ElemF64))
}

func TestBuildRegistry_Strings_ComparisonOnly(t *testing.T) {
	assert.Equal(t, comparisonCatalog, ListAlgorithms(ElemStr))
}

func TestBuildRegistry_OrderIsStable(t *testing.T) {
	assert.Equal(t, ListAlgorithms(ElemI32), ListAlgorithms(ElemI32))
}

func TestRegistry_DuplicateNamesCoexist(t *testing.T) {
	// GIVEN a registry with a colliding entry appended
	regs := buildRegistry[int32]()
	regs = append(regs, Algorithm[int32]{Name: "std_sort", Run: func(v []int32) {}})

	// THEN both rows survive; nothing deduplicates
	count := 0
	for _, a := range regs {
		if a.Name == "std_sort" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestListAlgorithmsWithPlugins_BadPathKeepsBuiltins(t *testing.T) {
	names := ListAlgorithmsWithPlugins(ElemI32, []string{"/nonexistent/libfoo.so"})
	assert.Equal(t, ListAlgorithms(ElemI32), names)
}
