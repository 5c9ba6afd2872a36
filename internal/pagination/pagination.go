// Package pagination holds the page arithmetic shared by every paged listing.
package pagination

const DefaultPageSize = 5

// Normalize floors the requested page at 1. Absent or non-numeric page
// parameters are parsed to 0 upstream and land on the first page here.
func Normalize(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func Offset(page, size int) int {
	return (Normalize(page) - 1) * size
}

// TotalPages is ceil(total/size).
func TotalPages(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
