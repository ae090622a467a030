// functors_test.go file
package utils_test

import (
	"reflect"
	"testing"

	"github.com/cardiokit/ecgcore/pkg/internal/utils"
)

func TestMap(t *testing.T) {
	elems := []int{1, 2, 3, 4}
	doubledElems := utils.Map(elems, func(i int) int {
		return i * 2
	})

	expected := []int{2, 4, 6, 8}
	if !reflect.DeepEqual(doubledElems, expected) {
		t.Errorf("Expected %v, got %v", expected, doubledElems)
	}
}

func TestFilter(t *testing.T) {
	elems := []int{1, 2, 3, 4, 5, 6}
	filteredElems := utils.Filter(elems, func(i int) bool {
		return i%2 == 0 // Keep only even numbers
	})

	expected := []int{2, 4, 6}
	if !reflect.DeepEqual(filteredElems, expected) {
		t.Errorf("Expected %v, got %v", expected, filteredElems)
	}
}

func TestContains(t *testing.T) {
	leads := []string{"I", "II", "V1"}
	if !utils.Contains(leads, "II") {
		t.Error("Expected leads to contain II")
	}
	if utils.Contains(leads, "V6") {
		t.Error("Did not expect leads to contain V6")
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		in       float64
		expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}
	for _, c := range cases {
		if got := utils.Clamp01(c.in); got != c.expected {
			t.Errorf("Clamp01(%v) = %v, want %v", c.in, got, c.expected)
		}
	}
}
