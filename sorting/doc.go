// Package sorting runs instrumented sorts over numeric arrays and records
// every comparison and mutation as a steps.Stream.
//
// What
//
//   - Seven strategies: Bubble, Selection, Insertion, Merge, Quick (Lomuto),
//     Heap and Cocktail Shaker.
//   - Compare(i, j) marks a comparison, Swap(i, j) exchanges two slots,
//     Overwrite(k, v) stores v at k.
//   - Replaying the Swap and Overwrite steps in order against the input
//     yields the ascending array returned in Result.Sorted.
//
// Semantics
//
//	Comparisons are strict, so equal values never swap. Bubble makes every
//	pass with no early exit. Insertion emits only the comparisons that
//	cause a shift. Merge Sort alternates between the working array and one
//	auxiliary copy per level; its Overwrite steps name the destination slot
//	and the value written. Quick Sort always emits the final pivot swap,
//	including self-swaps.
//
// Stability
//
//	Bubble, Insertion, Merge and Cocktail are stable; Selection, Quick and
//	Heap are not. See Algorithm.Stable.
//
// Complexity (n = len(values))
//
//   - Bubble, Selection, Insertion, Cocktail: O(n²) steps.
//   - Merge, Heap: O(n log n) steps.
//   - Quick: O(n log n) expected, O(n²) on sorted input.
//
// Usage
//
//	res, err := sorting.Sort([]float64{5, 3, 4, 1}, sorting.Heap)
//	if err != nil {
//		// ErrEmptyInput, ErrNotANumber or ErrUnknownAlgorithm
//	}
//	fmt.Println(res.Sorted) // [1 3 4 5]
package sorting
