package intrinsic

import (
	"testing"
)

func TestArray_DefaultBounds(t *testing.T) {
	arr := NewArray([]int64{10, 20, 30, 40, 50})

	if arr.Len() != 5 {
		t.Errorf("Expected length 5, got %d", arr.Len())
	}
	if arr.Lower() != 0 {
		t.Errorf("Expected lower bound 0, got %d", arr.Lower())
	}
	if arr.Upper() != 4 {
		t.Errorf("Expected upper bound 4, got %d", arr.Upper())
	}

	arr.Set(1, 99)
	if arr.At(1) != 99 {
		t.Errorf("Expected arr[1] = 99, got %d", arr.At(1))
	}
	if arr.At(4) != 50 {
		t.Errorf("Expected arr[4] = 50, got %d", arr.At(4))
	}
}

func TestArray_CustomLower(t *testing.T) {
	arr := NewArrayWithLower([]int32{7, 8, 9}, -1)

	if arr.Lower() != -1 || arr.Upper() != 1 {
		t.Errorf("Expected bounds [-1:1], got [%d:%d]", arr.Lower(), arr.Upper())
	}
	// Index -1 addresses the first element.
	if arr.At(-1) != 7 {
		t.Errorf("Expected arr[-1] = 7, got %d", arr.At(-1))
	}
	arr.Set(1, 42)
	if arr.data[2] != 42 {
		t.Errorf("Expected data[2] = 42, got %d", arr.data[2])
	}
}

func TestArray_CopiesInput(t *testing.T) {
	src := []int64{1, 2, 3}
	arr := NewArray(src)
	src[0] = 100
	if arr.At(0) != 1 {
		t.Errorf("array aliased its input: got arr[0] = %d", arr.At(0))
	}
	vals := arr.Values()
	vals[1] = 100
	if arr.At(1) != 2 {
		t.Errorf("Values aliased the array: got arr[1] = %d", arr.At(1))
	}
}

func TestArray_Empty(t *testing.T) {
	arr := NewArray[int64](nil)
	if arr.Len() != 0 {
		t.Errorf("Expected length 0, got %d", arr.Len())
	}
	if arr.Upper() != arr.Lower()-1 {
		t.Errorf("Expected upper %d, got %d", arr.Lower()-1, arr.Upper())
	}
}

func TestBoundsChecking_LowerBound(t *testing.T) {
	arr := NewArrayWithLower([]int64{1, 2, 3}, 1)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for index 0 (below lower bound 1)")
		}
	}()
	arr.At(0)
}

func TestBoundsChecking_UpperBound(t *testing.T) {
	arr := NewArray([]int64{1, 2, 3})
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for index 3 (above upper bound 2)")
		}
	}()
	arr.Set(3, 0)
}

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data []int64
		want int64
	}{
		{name: "empty", data: nil, want: 0},
		{name: "single", data: []int64{5}, want: 5},
		{name: "one to four", data: []int64{1, 2, 3, 4}, want: 10},
		{name: "negatives", data: []int64{-3, 1, -1, 3}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(NewArray(tt.data))
			if got != tt.want {
				t.Errorf("Sum(%v) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}

func TestSum_Float(t *testing.T) {
	got := Sum(NewArrayWithLower([]float64{0.5, 0.25, 0.25}, 1))
	if got != 1.0 {
		t.Errorf("Expected 1.0, got %v", got)
	}
}

func BenchmarkSum(b *testing.B) {
	data := make([]int64, 1024)
	for i := range data {
		data[i] = int64(i)
	}
	arr := NewArray(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sum(arr)
	}
}
