package objmask

import (
	"errors"
	"fmt"
	"strings"

	eng "github.com/reoring/objmask/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidOperation = "invalid_operation"
	CodeWildcardRemoval  = "wildcard_removal"
	CodeParseError       = "parse_error"
)

// Issue represents a single failure of a mask operation.
type Issue struct {
	Path    string // Dotted path of the offending node (for example: obj.foo).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_operation at obj.foo
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// fromEngineIssue lifts the engine's lightweight issue into the public
// error model.
func fromEngineIssue(si *eng.SimpleIssue) error {
	if si == nil {
		return nil
	}
	return Issues{{Path: si.Path, Code: si.Code, Message: si.Message}}
}
