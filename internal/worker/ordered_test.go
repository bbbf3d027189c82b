package worker

import (
	"testing"

	"github.com/lgbarn/fenmove-go/internal/testutil"
)

func feed(indices ...int) <-chan ProcessResult {
	ch := make(chan ProcessResult, len(indices))
	for _, i := range indices {
		ch <- ProcessResult{Index: i}
	}
	close(ch)
	return ch
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name    string
		arrival []int
		want    []int
	}{
		{"already ordered", []int{0, 1, 2, 3}, []int{0, 1, 2, 3}},
		{"reversed", []int{3, 2, 1, 0}, []int{0, 1, 2, 3}},
		{"interleaved", []int{1, 0, 3, 2, 4}, []int{0, 1, 2, 3, 4}},
		{"gap holds back the rest", []int{0, 2, 3}, []int{0}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			InOrder(feed(tt.arrival...), func(r ProcessResult) bool {
				got = append(got, r.Index)
				return true
			})
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestInOrder_StopsEmitting(t *testing.T) {
	var got []int
	InOrder(feed(2, 0, 1, 3, 4), func(r ProcessResult) bool {
		got = append(got, r.Index)
		return r.Index < 1
	})
	testutil.AssertEqual(t, got, []int{0, 1})
}

func TestInOrder_WithPool(t *testing.T) {
	pool := NewPool(echoProcessFunc(), WithWorkers(4), WithBufferSize(4))
	pool.Start()

	const numItems = 40
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(item(i))
		}
		pool.Close()
	}()

	next := 0
	InOrder(pool.Results(), func(r ProcessResult) bool {
		if r.Index != next {
			t.Errorf("emitted index %d; want %d", r.Index, next)
		}
		next++
		return true
	})
	if next != numItems {
		t.Errorf("emitted %d results; want %d", next, numItems)
	}
}
