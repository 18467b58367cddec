package sorting

// sorter runs one strategy over t.a in place.
type sorter func(t *tracer)

func sorterFor(a Algorithm) sorter {
	switch a {
	case Bubble:
		return bubble
	case Selection:
		return selection
	case Insertion:
		return insertion
	case Merge:
		return mergeSort
	case Quick:
		return quick
	case Heap:
		return heapSort
	case Cocktail:
		return cocktail
	default:
		return nil
	}
}

// bubble makes n-1 full passes of adjacent compare/swap, each pass one
// shorter than the last. There is no early exit on a swap-free pass.
func bubble(t *tracer) {
	a := t.a
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if !t.compare(j, j+1) {
				return
			}
			if a[j] > a[j+1] && !t.swap(j, j+1) {
				return
			}
		}
	}
}

// selection compares the running minimum index against every later index,
// then swaps the minimum into place unless it already is.
func selection(t *tracer) {
	a := t.a
	n := len(a)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if !t.compare(minIdx, j) {
				return
			}
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i && !t.swap(i, minIdx) {
			return
		}
	}
}

// insertion shifts every larger predecessor one slot right, then places the
// key. Only successful comparisons are emitted: the one that stops the
// shift is not.
func insertion(t *tracer) {
	a := t.a
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			if !t.compare(j, j+1) || !t.overwrite(a, j+1, a[j]) {
				return
			}
			j--
		}
		if !t.overwrite(a, j+1, key) {
			return
		}
	}
}

// mergeSort is top-down merge sort alternating the roles of the working
// array and one auxiliary copy at each level, so no per-merge buffers are
// allocated. Overwrite steps carry the destination index and value; only the
// top-level merge writes to the working array itself, which is why replaying
// them against the input still ends sorted.
func mergeSort(t *tracer) {
	if len(t.a) <= 1 {
		return
	}
	aux := make([]float64, len(t.a))
	copy(aux, t.a)
	mergeSplit(t, t.a, aux, 0, len(t.a)-1)
}

// mergeSplit sorts src[lo..hi] into dst[lo..hi]; src is scratch.
func mergeSplit(t *tracer, dst, src []float64, lo, hi int) bool {
	if lo == hi {
		return true
	}
	mid := (lo + hi) / 2
	if !mergeSplit(t, src, dst, lo, mid) || !mergeSplit(t, src, dst, mid+1, hi) {
		return false
	}
	return merge(t, dst, src, lo, mid, hi)
}

// merge combines the sorted runs src[lo..mid] and src[mid+1..hi] into dst.
// Ties take the left run, keeping the sort stable. Residual elements are
// flushed with a self-comparison followed by their overwrite.
func merge(t *tracer, dst, src []float64, lo, mid, hi int) bool {
	k, i, j := lo, lo, mid+1
	for i <= mid && j <= hi {
		if !t.compare(i, j) {
			return false
		}
		if src[i] <= src[j] {
			if !t.overwrite(dst, k, src[i]) {
				return false
			}
			i++
		} else {
			if !t.overwrite(dst, k, src[j]) {
				return false
			}
			j++
		}
		k++
	}
	for ; i <= mid; i, k = i+1, k+1 {
		if !t.compare(i, i) || !t.overwrite(dst, k, src[i]) {
			return false
		}
	}
	for ; j <= hi; j, k = j+1, k+1 {
		if !t.compare(j, j) || !t.overwrite(dst, k, src[j]) {
			return false
		}
	}
	return true
}

func quick(t *tracer) {
	quickRange(t, 0, len(t.a)-1)
}

func quickRange(t *tracer, lo, hi int) bool {
	if lo >= hi {
		return true
	}
	p, ok := partition(t, lo, hi)
	if !ok {
		return false
	}
	return quickRange(t, lo, p-1) && quickRange(t, p+1, hi)
}

// partition is Lomuto's scheme with a[hi] as pivot. Every candidate is
// compared against the pivot index; the final pivot swap is always
// emitted, even when it is a self-swap.
func partition(t *tracer, lo, hi int) (int, bool) {
	a := t.a
	pivot := a[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if !t.compare(j, hi) {
			return 0, false
		}
		if a[j] < pivot {
			i++
			if !t.swap(i, j) {
				return 0, false
			}
		}
	}
	if !t.swap(i+1, hi) {
		return 0, false
	}
	return i + 1, true
}

// heapSort builds a max-heap bottom-up, then repeatedly moves the root
// behind the shrinking heap.
func heapSort(t *tracer) {
	n := len(t.a)
	for i := n/2 - 1; i >= 0; i-- {
		if !siftDown(t, n, i) {
			return
		}
	}
	for end := n - 1; end > 0; end-- {
		if !t.swap(0, end) || !siftDown(t, end, 0) {
			return
		}
	}
}

// siftDown restores the heap property below i within a[:n]. Each child
// present is compared against the current largest index.
func siftDown(t *tracer, n, i int) bool {
	a := t.a
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n {
			if !t.compare(left, largest) {
				return false
			}
			if a[left] > a[largest] {
				largest = left
			}
		}
		if right < n {
			if !t.compare(right, largest) {
				return false
			}
			if a[right] > a[largest] {
				largest = right
			}
		}
		if largest == i {
			return true
		}
		if !t.swap(i, largest) {
			return false
		}
		i = largest
	}
}

// cocktail alternates a forward and a backward bubble pass over a window
// that shrinks from both ends. A forward pass without swaps ends the sort;
// so does a backward pass without swaps.
func cocktail(t *tracer) {
	a := t.a
	start, end := 0, len(a)
	for swapped := true; swapped; {
		swapped = false
		for i := start; i < end-1; i++ {
			if !t.compare(i, i+1) {
				return
			}
			if a[i] > a[i+1] {
				if !t.swap(i, i+1) {
					return
				}
				swapped = true
			}
		}
		if !swapped {
			return
		}
		swapped = false
		end--
		for i := end - 1; i >= start; i-- {
			if !t.compare(i, i+1) {
				return
			}
			if a[i] > a[i+1] {
				if !t.swap(i, i+1) {
					return
				}
				swapped = true
			}
		}
		start++
	}
}
