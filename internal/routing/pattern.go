package routing

import (
	"context"
	"fmt"
	"strings"
)

// segment is one element of a parsed path pattern. A non-empty param
// means the segment binds any single path segment under that name;
// otherwise literal must match exactly.
type segment struct {
	literal string
	param   string
}

// parsePattern splits a pattern like "/subscriptions/{id}" into segments.
// Called once per route at registration time.
func parsePattern(pattern string) []segment {
	if !strings.HasPrefix(pattern, "/") {
		panic(fmt.Sprintf("routing: pattern %q must start with /", pattern))
	}

	parts := splitPath(pattern)
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		if strings.ContainsAny(part, "{}") {
			if !strings.HasPrefix(part, "{") || !strings.HasSuffix(part, "}") || len(part) < 3 {
				panic(fmt.Sprintf("routing: malformed parameter segment %q in pattern %q", part, pattern))
			}
			name := part[1 : len(part)-1]
			if strings.ContainsAny(name, "{}") {
				panic(fmt.Sprintf("routing: malformed parameter segment %q in pattern %q", part, pattern))
			}
			segments = append(segments, segment{param: name})
			continue
		}
		segments = append(segments, segment{literal: part})
	}
	return segments
}

// matchPath reports whether path structurally matches the parsed pattern,
// returning bound parameter values on success. A {name} segment matches
// any single non-empty path segment; literals must match exactly and the
// segment counts must agree.
func matchPath(segments []segment, path string) (Params, bool) {
	parts := splitPath(path)
	if len(parts) != len(segments) {
		return nil, false
	}

	var params Params
	for i, seg := range segments {
		if seg.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(Params, 2)
			}
			params[seg.param] = parts[i]
			continue
		}
		if parts[i] != seg.literal {
			return nil, false
		}
	}
	return params, true
}

// splitPath returns the path's segments, treating "/" as zero segments so
// the root pattern "/" matches exactly the root path.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Params holds the values bound by {name} pattern segments.
type Params map[string]string

type paramsKey struct{}

func withParams(ctx context.Context, params Params) context.Context {
	return context.WithValue(ctx, paramsKey{}, params)
}

// ParamsFromContext returns the parameters bound for the matched route,
// or nil when the route has none.
func ParamsFromContext(ctx context.Context) Params {
	params, _ := ctx.Value(paramsKey{}).(Params)
	return params
}

// Param returns a single bound parameter value, or "" if absent.
func Param(ctx context.Context, name string) string {
	return ParamsFromContext(ctx)[name]
}
