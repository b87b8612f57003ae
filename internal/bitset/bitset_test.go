package bitset

import (
	"reflect"
	"testing"
)

func TestAddHas(t *testing.T) {
	s := New(10)
	s.Add(3)
	s.Add(7)
	if !s.Has(3) || !s.Has(7) {
		t.Fatal("Has should report added bits")
	}
	if s.Has(4) {
		t.Fatal("Has should not report unset bit")
	}
}

func TestIntersectAcrossWordBoundary(t *testing.T) {
	a := New(130)
	b := New(130)
	a.Add(0)
	a.Add(64)
	a.Add(129)
	b.Add(64)
	b.Add(65)

	inter := a.Intersect(b)
	var got []int
	inter.Each(func(i int) { got = append(got, i) })
	if want := []int{64}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Intersect().Each() visited %v, want %v", got, want)
	}
}

func TestEachOrder(t *testing.T) {
	s := New(200)
	for _, v := range []int{199, 1, 64, 63, 128} {
		s.Add(v)
	}
	var got []int
	s.Each(func(i int) { got = append(got, i) })
	want := []int{1, 63, 64, 128, 199}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Each() visited %v, want %v", got, want)
	}
}

func TestLen(t *testing.T) {
	s := New(42)
	if s.Len() != 42 {
		t.Fatalf("Len() = %d, want 42", s.Len())
	}
}
