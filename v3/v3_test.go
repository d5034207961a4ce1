package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestNewMatrixBadLength(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("Expected an error for a slice not divisible by 3")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("Expected an error for an empty slice")
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	if err != nil {
		Te.Fatal(err)
	}
	if B.At(2, 2) != 18 || B.At(0, 0) != 4 {
		Te.Errorf("Wrong vectors selected: %v", B)
	}
	C := Zeros(2)
	if err := C.SomeVecsSafe(A, cind); err == nil {
		Te.Error("Expected an error for a mismatched receiver")
	}
}

func TestTranslateAndSetMatrix(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	B := Zeros(2)
	B.Translate(A, [3]float64{1, 2, 3})
	if B.Vec(1) != [3]float64{2, 3, 4} {
		Te.Errorf("Bad translation: %v", B)
	}
	S := Zeros(4)
	S.SetMatrix(0, 0, A)
	S.SetMatrix(2, 0, B)
	if S.Vec(2) != [3]float64{1, 2, 3} {
		Te.Errorf("Bad SetMatrix: %v", S)
	}
	if !S.Equal(S, -1) {
		Te.Error("A matrix should be equal to itself")
	}
	fmt.Println(S)
}

func TestDistance(Te *testing.T) {
	p, _ := NewMatrix([]float64{0, 0, 0, 3, 4, 0})
	if d := p.Distance(0, p, 1); math.Abs(d-5) > appzero {
		Te.Errorf("Distance should be 5, got %f", d)
	}
	q, _ := NewMatrix([]float64{0, 0, 12})
	if d := p.Distance(1, q, 0); math.Abs(d-13) > appzero {
		Te.Errorf("Distance should be 13, got %f", d)
	}
}
