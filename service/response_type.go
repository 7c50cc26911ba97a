package service

// ResponseType enumerates the outcomes a service call reports to handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
