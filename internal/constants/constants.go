package constants

const (
	// Pagination
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyRequestID  = "request_id"
	ContextKeyResourceID = "resource_id"

	// Headers
	HeaderRequestID = "X-Request-ID"

	// Sorting
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
	SortByName      = "name"
)
