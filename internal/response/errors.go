package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Storage ───────────────────────────────────────────────────────
	ErrFetchFailed  ErrCode = "FETCH_FAILED"
	ErrSaveFailed   ErrCode = "SAVE_FAILED"
	ErrDeleteFailed ErrCode = "DELETE_FAILED"
	ErrUnavailable  ErrCode = "DATABASE_UNAVAILABLE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the fixed human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Invalid curriculum payload"
	case ErrInvalidID:
		return "Invalid curriculum id"
	case ErrNotFound:
		return "Not found"
	case ErrFetchFailed:
		return "Failed to fetch curricula"
	case ErrSaveFailed:
		return "Failed to save curriculum"
	case ErrDeleteFailed:
		return "Failed to delete curriculum"
	case ErrUnavailable:
		return "Database unavailable"
	case ErrInternal:
		return "Internal server error"
	default:
		return "Unexpected error"
	}
}
