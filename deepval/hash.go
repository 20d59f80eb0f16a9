package deepval

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// hashInlineLimit is the longest canonical form returned verbatim. Longer
// forms are digested; sha256 hex is itself 64 characters, so digesting
// anything shorter would only grow the key.
const hashInlineLimit = 64

// Hash returns a stable structural fingerprint of v. Two values that are
// Equal hash identically regardless of map iteration or insertion order;
// slice order is significant. Short canonical forms are returned as-is,
// longer ones as a sha256 hex digest, so the result is always usable as a
// memoization key.
func Hash(v any) string {
	var b strings.Builder
	canonicalize(&b, v)
	s := b.String()
	if len(s) <= hashInlineLimit {
		return s
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// canonicalize writes a length-prefixed token stream so that distinct
// structures can never serialize to the same bytes by concatenation.
func canonicalize(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("z;")
	case bool:
		fmt.Fprintf(b, "b%t;", t)
	case string:
		fmt.Fprintf(b, "s%d:%s;", len(t), t)
	case json.Number:
		fmt.Fprintf(b, "n%d:%s;", len(t), t)
	case time.Time:
		fmt.Fprintf(b, "d%d;", t.UnixNano())
	case []any:
		fmt.Fprintf(b, "a%d[", len(t))
		for _, vv := range t {
			canonicalize(b, vv)
		}
		b.WriteString("];")
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(b, "m%d{", len(t))
		for _, k := range keys {
			fmt.Fprintf(b, "k%d:%s;", len(k), k)
			canonicalize(b, t[k])
		}
		b.WriteString("};")
	case float64:
		b.WriteString("n")
		b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
		b.WriteString(";")
	default:
		s := fmt.Sprintf("%v", t)
		fmt.Fprintf(b, "x%d:%s;", len(s), s)
	}
}
