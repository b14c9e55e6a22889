package pdftext

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned for a malformed page range expression.
var ErrInvalidRange = errors.New("invalid page range")

// ParsePageRange parses expressions like "1-5" or "1,3,5" into a sorted,
// de-duplicated list of 1-indexed pages. The upper bound of a range is
// capped at totalPages; single page numbers are returned unchecked.
func ParsePageRange(expr string, totalPages int) ([]int, error) {
	// Non-nil even when empty: a nil selection means "all pages".
	pages := []int{}
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)

		if !strings.Contains(part, "-") {
			n, err := parsePageNumber(part)
			if err != nil {
				return nil, err
			}
			pages = append(pages, n)
			continue
		}

		bounds := strings.Split(part, "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("%w: %q is not of the form start-end", ErrInvalidRange, part)
		}
		start, err := parsePageNumber(bounds[0])
		if err != nil {
			return nil, err
		}
		end, err := parsePageNumber(bounds[1])
		if err != nil {
			return nil, err
		}
		for p := start; p <= min(end, totalPages); p++ {
			pages = append(pages, p)
		}
	}

	slices.Sort(pages)
	return slices.Compact(pages), nil
}

// AllPages returns 1..totalPages.
func AllPages(totalPages int) []int {
	pages := make([]int, 0, max(totalPages, 0))
	for p := 1; p <= totalPages; p++ {
		pages = append(pages, p)
	}
	return pages
}

// parsePageNumber parses a page number. Values too large for an int
// saturate, so an oversized range end is still capped at the page count.
func parsePageNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
		return math.MaxInt, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a page number", ErrInvalidRange, s)
	}
	return n, nil
}
