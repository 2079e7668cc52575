package pagination

import "math"

// CalculateOffset calculates the database OFFSET value based on page number and page size.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * pageSize
//
// Examples:
//   - Page 1, Size 10 -> Offset 0
//   - Page 2, Size 10 -> Offset 10
//   - Page 3, Size 50 -> Offset 100
//
// The result saturates at math.MaxInt instead of wrapping, so an absurd page
// number reads past the end of the table and yields an empty page.
func CalculateOffset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// CalculateTotalPages calculates the total number of pages based on total items and page size.
// Uses ceiling division so a partial last page still counts.
//
// Special cases:
//   - If total is 0, returns 0 (an empty collection has no pages)
//   - If pageSize is not positive, returns 0
//
// Examples:
//   - Total 0, Size 10 -> 0 pages
//   - Total 10, Size 10 -> 1 page
//   - Total 11, Size 10 -> 2 pages
func CalculateTotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	// Ceiling division: (total + size - 1) / size
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
