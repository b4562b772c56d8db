package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Document is the decoded fieldData of a collection item. Values follow
// encoding/json: nil, bool, float64 or json.Number, string, map[string]any
// and []any.
type Document = map[string]any

// Path is a sequence of segments, each descending one level into a Document
type Path []string

// String joins the segments back into dot notation
func (p Path) String() string {
	return strings.Join(p, ".")
}

var (
	ErrEmptyPath    = errors.New("path must have at least one segment")
	ErrPathNotFound = errors.New("path not found")
)

// PathNotFoundError reports the first segment that did not resolve
type PathNotFoundError struct {
	Path    Path
	Segment int
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("no value at %q: segment %q not found", e.Path.String(), e.Path[e.Segment])
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// IndexError reports a sequence index that is out of range during a write
type IndexError struct {
	Path   Path
	Length int
}

func (e *IndexError) Error() string {
	seg := e.Path[len(e.Path)-1]
	if _, ok := sequenceIndex(seg); !ok {
		return fmt.Sprintf("cannot set %q: %q is not a list index", e.Path.String(), seg)
	}
	return fmt.Sprintf("cannot set %q: index %s out of range (length %d)", e.Path.String(), seg, e.Length)
}

// ParsePath splits a dot-notation path. An empty string addresses the whole document.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	return Path(strings.Split(s, "."))
}

// Get resolves path inside doc. The second return value is false when the
// path does not resolve; that is a normal outcome, not an error.
func Get(doc Document, path Path) (any, bool) {
	v, i := resolve(doc, path)
	return v, i == len(path)
}

// Lookup is Get reporting absence as a *PathNotFoundError
func Lookup(doc Document, path Path) (any, error) {
	v, i := resolve(doc, path)
	if i < len(path) {
		return nil, &PathNotFoundError{Path: path, Segment: i}
	}
	return v, nil
}

// resolve walks as far as it can and returns the number of segments consumed
func resolve(doc Document, path Path) (any, int) {
	var current any = doc
	for i, seg := range path {
		next, ok := child(current, seg)
		if !ok {
			return nil, i
		}
		current = next
	}
	return current, len(path)
}

func child(v any, seg string) (any, bool) {
	switch c := v.(type) {
	case map[string]any:
		next, ok := c[seg]
		return next, ok
	case []any:
		idx, ok := sequenceIndex(seg)
		if !ok || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	default:
		return nil, false
	}
}

// sequenceIndex parses a segment as a non-negative decimal index
func sequenceIndex(seg string) (int, bool) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}
	for _, c := range seg {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(seg)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// Set returns a copy of doc with value stored at path. doc is left untouched:
// every container on the path is copied and everything else is shared.
// Missing or non-container intermediates become empty mappings.
func Set(doc Document, path Path, value any) (Document, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	updated, err := setIn(doc, path, 0, value)
	if err != nil {
		return nil, err
	}
	return updated.(map[string]any), nil
}

func setIn(current any, path Path, depth int, value any) (any, error) {
	seg := path[depth]
	last := depth == len(path)-1

	if seq, ok := current.([]any); ok {
		idx, isIdx := sequenceIndex(seg)
		if !isIdx || idx >= len(seq) {
			return nil, &IndexError{Path: path[:depth+1], Length: len(seq)}
		}
		out := make([]any, len(seq))
		copy(out, seq)
		if last {
			out[idx] = value
			return out, nil
		}
		next, err := setIn(seq[idx], path, depth+1, value)
		if err != nil {
			return nil, err
		}
		out[idx] = next
		return out, nil
	}

	src, _ := current.(map[string]any)
	out := make(map[string]any, len(src)+1)
	for k, v := range src {
		out[k] = v
	}

	if last {
		out[seg] = value
		return out, nil
	}

	next, err := setIn(src[seg], path, depth+1, value)
	if err != nil {
		return nil, err
	}
	out[seg] = next
	return out, nil
}

// Clone returns a deep copy of a JSON-like value
func Clone(v any) any {
	switch c := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(c))
		for k, val := range c {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(c))
		for i, val := range c {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}

// Equal reports structural equality of two JSON-like values.
// Numbers compare by value regardless of their Go representation.
func Equal(a, b any) bool {
	if an, ok := toFloat(a); ok {
		bn, ok := toFloat(b)
		return ok && an == bn
	}

	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, x := range av {
			y, ok := bv[k]
			if !ok || !Equal(x, y) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ParseContent decodes raw as JSON. Input that is not valid JSON is kept as
// a plain string.
func ParseContent(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
