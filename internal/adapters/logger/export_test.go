package logger

// Unexported error formatting, exposed for the black-box tests.
var (
	CollectErrorEntries = func(err error) []ErrorEntry {
		entries := collectErrorEntries(err)
		out := make([]ErrorEntry, len(entries))
		for i, e := range entries {
			out[i] = ErrorEntry{Message: e.message, Metadata: e.metadata}
		}
		return out
	}
	FormatErrorEntries = func(entries []ErrorEntry) string {
		in := make([]errorEntry, len(entries))
		for i, e := range entries {
			in[i] = errorEntry{message: e.Message, metadata: e.Metadata}
		}
		return formatErrorEntries(in)
	}
)

// ErrorEntry mirrors errorEntry for tests.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}
