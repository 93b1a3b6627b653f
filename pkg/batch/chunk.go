package batch

// Chunk partitions items into contiguous chunks of at most size elements.
// Chunk i covers items[i*size : min((i+1)*size, len(items))]; every chunk
// except possibly the last has exactly size elements. The returned chunks
// alias the input slice, no elements are copied.
//
// size must be >= 1; for size < 1 the result is nil. An empty input yields
// nil.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 || len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}

	return chunks
}
