package batch

import (
	"testing"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		size     int
		wantLens []int
	}{
		{
			name:     "even split",
			items:    []int{1, 2, 3, 4, 5, 6},
			size:     2,
			wantLens: []int{2, 2, 2},
		},
		{
			name:     "short last chunk",
			items:    []int{1, 2, 3, 4, 5},
			size:     2,
			wantLens: []int{2, 2, 1},
		},
		{
			name:     "size larger than input",
			items:    []int{1, 2, 3},
			size:     10,
			wantLens: []int{3},
		},
		{
			name:     "size one",
			items:    []int{1, 2, 3},
			size:     1,
			wantLens: []int{1, 1, 1},
		},
		{
			name:     "empty input",
			items:    nil,
			size:     3,
			wantLens: nil,
		},
		{
			name:     "invalid size",
			items:    []int{1, 2, 3},
			size:     0,
			wantLens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Chunk(tt.items, tt.size)

			if len(chunks) != len(tt.wantLens) {
				t.Fatalf("Chunk() returned %d chunks, want %d", len(chunks), len(tt.wantLens))
			}
			for i, c := range chunks {
				if len(c) != tt.wantLens[i] {
					t.Errorf("chunk %d has length %d, want %d", i, len(c), tt.wantLens[i])
				}
			}
		})
	}
}

// Concatenating all chunks must reproduce the input exactly, and every chunk
// except the last must have exactly the requested size.
func TestChunk_Reassembly(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 100} {
		items := make([]int, 53)
		for i := range items {
			items[i] = i * 3
		}

		var reassembled []int
		chunks := Chunk(items, size)
		for i, c := range chunks {
			if i < len(chunks)-1 && len(c) != size {
				t.Errorf("size %d: non-final chunk %d has length %d", size, i, len(c))
			}
			reassembled = append(reassembled, c...)
		}

		if len(reassembled) != len(items) {
			t.Fatalf("size %d: reassembled %d items, want %d", size, len(reassembled), len(items))
		}
		for i := range items {
			if reassembled[i] != items[i] {
				t.Errorf("size %d: reassembled[%d] = %d, want %d", size, i, reassembled[i], items[i])
			}
		}
	}
}

func TestChunk_AliasesInput(t *testing.T) {
	items := []int{1, 2, 3, 4}
	chunks := Chunk(items, 2)

	items[0] = 99
	if chunks[0][0] != 99 {
		t.Error("chunks should alias the input slice, not copy it")
	}
}
