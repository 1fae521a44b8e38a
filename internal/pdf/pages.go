package pdf

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// ParsePageRange parses a 1-based page range expression such as
// "1-3,5,7-9" into a sorted set of zero-based page indices.
//
// Ranges clamp to the document's last page; single pages outside the
// document drop silently; a reversed range selects nothing. An empty
// expression selects every page. Anything non-numeric is an error.
func ParsePageRange(expr string, pageCount int) ([]int, error) {
	if strings.TrimSpace(expr) == "" {
		all := make([]int, pageCount)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	selected := make(map[int]bool)
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		first, rest, isRange := strings.Cut(part, "-")
		if isRange {
			start, err := strconv.Atoi(strings.TrimSpace(first))
			if err != nil {
				return nil, fmt.Errorf("invalid page range segment %q", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("invalid page range segment %q", part)
			}
			if end > pageCount {
				end = pageCount
			}
			for p := start; p <= end; p++ {
				if p >= 1 {
					selected[p-1] = true
				}
			}
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		if p >= 1 && p <= pageCount {
			selected[p-1] = true
		}
	}
	return slices.Sorted(maps.Keys(selected)), nil
}

// PageSelection converts zero-based indices into the 1-based page number
// strings pdfcpu selections use.
func PageSelection(indices []int) []string {
	selection := make([]string, len(indices))
	for i, idx := range indices {
		selection[i] = strconv.Itoa(idx + 1)
	}
	return selection
}
