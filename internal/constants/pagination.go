package constants

// Pagination bounds for listing endpoints.
type Pagination struct {
	CountDefault int
	CountMax     int
}

func buildPagination(test bool) Pagination {
	p := Pagination{
		CountDefault: 15,
		CountMax:     100,
	}

	// keep test fixtures small
	if test {
		p.CountMax = 10
	}

	return p
}

// PaginationGlobal bounds every listing endpoint unless a more specific
// table entry applies.
var PaginationGlobal = buildPagination(testMode) //nolint:gochecknoglobals

// SortableColumns whitelists the sort keys accepted per listing. Anything
// not listed here is rejected by the query layer before touching SQL.
var SortableColumns = map[string][]string{ //nolint:gochecknoglobals
	"users":            {"id", "username", "createdAt"},
	"user-imports":     {"createdAt"},
	"accounts":         {"createdAt"},
	"jobs":             {"createdAt"},
	"video-channels":   {"id", "name", "updatedAt", "createdAt"},
	"videos":           {"name", "duration", "createdAt", "publishedAt", "views", "likes", "trending"},
	"videos-search":    {"name", "duration", "createdAt", "publishedAt", "views", "likes", "match"},
	"video-comments":   {"createdAt", "totalReplies"},
	"video-imports":    {"createdAt"},
	"followers":        {"createdAt", "state", "score"},
	"following":        {"createdAt", "redundancyAllowed", "state"},
	"abuses":           {"id", "createdAt", "state"},
	"server-blocklist": {"createdAt"},
}

// IsSortable reports whether column is an accepted sort key for listing.
func IsSortable(listing, column string) bool {
	for _, c := range SortableColumns[listing] {
		if c == column {
			return true
		}
	}

	return false
}
