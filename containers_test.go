package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStack(t *testing.T) {
	var s Stack[rune]
	s.PushN('a', 'b', 'c')
	c := s.Clone()

	top, ok := s.PopN(2)
	if !ok || string(top) != "bc" {
		t.Errorf("PopN(2) = %q, %v", string(top), ok)
	}
	if _, ok := s.PopN(2); ok {
		t.Error("PopN past the bottom reported ok")
	}
	if v, _ := s.Peek(); v != 'a' || s.Len() != 1 {
		t.Errorf("after PopN: top %q len %d", v, s.Len())
	}
	if c.Len() != 3 {
		t.Errorf("clone changed with original: len %d", c.Len())
	}
}

func TestPQ(t *testing.T) {
	items := map[string]int{"c": 3, "a": 1, "b": 2}

	for _, tt := range []struct {
		name string
		pq   *PQ[string]
		want []string
	}{
		{"min", MinQueue[string](), []string{"a", "b", "c"}},
		{"max", MaxQueue[string](), []string{"c", "b", "a"}},
	} {
		for v, p := range items {
			tt.pq.Push(&PQI[string]{V: v, P: p})
		}
		var got []string
		for tt.pq.Len() > 0 {
			got = append(got, tt.pq.Pop().V)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s queue order mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestPQUpdate(t *testing.T) {
	pq := MinQueue[string]()
	a := &PQI[string]{V: "a", P: 1}
	b := &PQI[string]{V: "b", P: 2}
	pq.Push(a)
	pq.Push(b)
	b.P = 0
	pq.Update(b)
	if got := pq.Peek().V; got != "b" {
		t.Errorf("Peek after Update = %q, want b", got)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v == 1 {
			q.Push(3)
		}
		return true
	})
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("queue order mismatch (-want +got):\n%s", diff)
	}
}

func TestMath(t *testing.T) {
	if got := LCM(23, 19, 13, 17); got != 96577 {
		t.Errorf("LCM = %d", got)
	}
	if got := LCM(4, 6); got != 12 {
		t.Errorf("LCM(4, 6) = %d", got)
	}
	if got := Product(2, 3, 4); got != 24 {
		t.Errorf("Product = %d", got)
	}
	if got := Sum(1.5, 2.5); got != 4 {
		t.Errorf("Sum = %v", got)
	}

	got, err := ParseInts("1", " 22 ", "-3")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 22, -3}, got); diff != "" {
		t.Errorf("ParseInts mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseInts("1", "99999999999999999999"); err == nil {
		t.Error("ParseInts of an overflowing value succeeded")
	}
}
