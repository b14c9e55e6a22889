package pdftext

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		total int
		want  []int
	}{
		{"range and single", "1-3,5", 10, []int{1, 2, 3, 5}},
		{"range clipped", "8-12", 10, []int{8, 9, 10}},
		{"single page", "4", 10, []int{4}},
		{"list", "1,3,5", 10, []int{1, 3, 5}},
		{"unsorted with duplicates", "5,1-3,2,5", 10, []int{1, 2, 3, 5}},
		{"whitespace", " 2 - 4 , 7 ", 10, []int{2, 3, 4, 7}},
		{"single out of range passes through", "15", 10, []int{15}},
		{"range entirely past end", "12-14", 10, []int{}},
		{"reversed range is empty", "5-3", 10, []int{}},
		{"zero start kept", "0-2", 10, []int{0, 1, 2}},
		{"oversized end capped", "1-99999999999999999999", 3, []int{1, 2, 3}},
		{"oversized start is empty", "99999999999999999999-100000000000000000000", 3, []int{}},
		{"oversized single saturates", "99999999999999999999", 3, []int{math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageRange(tt.expr, tt.total)
			if err != nil {
				t.Fatalf("ParsePageRange(%q) error: %v", tt.expr, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePageRange(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestParsePageRangeEmptyResultIsNotNil(t *testing.T) {
	got, err := ParsePageRange("20-30", 10)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Error("empty selection must be non-nil so it is not mistaken for all pages")
	}
}

func TestParsePageRangeInvalid(t *testing.T) {
	invalid := []string{
		"abc",
		"",
		"1,,2",
		"1-2-3",
		"-3",
		"3-",
		"a-5",
		"1.5",
	}

	for _, expr := range invalid {
		t.Run(expr, func(t *testing.T) {
			got, err := ParsePageRange(expr, 10)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("ParsePageRange(%q) error = %v, want ErrInvalidRange", expr, err)
			}
			if got != nil {
				t.Errorf("ParsePageRange(%q) = %v, want no partial result", expr, got)
			}
		})
	}
}

func TestAllPages(t *testing.T) {
	if diff := cmp.Diff([]int{1, 2, 3}, AllPages(3)); diff != "" {
		t.Errorf("AllPages(3) mismatch (-want +got):\n%s", diff)
	}
	if got := AllPages(0); len(got) != 0 {
		t.Errorf("AllPages(0) = %v, want empty", got)
	}
}
