package tabledata

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// parsePages expands a page selection such as "all", "3", "1,4-6" or
// "3-181" into 1-based page numbers, clamped to numPages.
func parsePages(selection string, numPages int) ([]int, error) {
	selection = strings.TrimSpace(strings.ToLower(selection))
	if selection == "" || selection == "all" {
		return pageRange(1, numPages), nil
	}

	seen := make(map[int]bool)
	var pages []int
	for _, part := range strings.Split(selection, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		first, last := part, part
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			first, last = strings.TrimSpace(lo), strings.TrimSpace(hi)
		}
		start, err := strconv.Atoi(first)
		if err != nil || start < 1 {
			return nil, goerr.New("invalid page selection", goerr.V("pages", selection))
		}
		end, err := strconv.Atoi(last)
		if err != nil || end < start {
			return nil, goerr.New("invalid page selection", goerr.V("pages", selection))
		}
		if end > numPages {
			end = numPages
		}
		for _, p := range pageRange(start, end) {
			if !seen[p] {
				seen[p] = true
				pages = append(pages, p)
			}
		}
	}
	return pages, nil
}

func pageRange(start, end int) []int {
	if end < start {
		return nil
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
