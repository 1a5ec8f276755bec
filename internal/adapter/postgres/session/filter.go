package session

import "github.com/prepstack/interview-backend/internal/domain"

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"
	sortByRole      = "role"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalizeFilter applies defaults and clamps values before the filter
// reaches SQL composition. Sort inputs are whitelisted, never
// interpolated as-is.
func normalizeFilter(f domain.SessionFilter) domain.SessionFilter {
	switch f.SortBy {
	case sortByCreatedAt, sortByUpdatedAt, sortByRole:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	return f
}
