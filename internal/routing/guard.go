package routing

import "net/http"

// Guard is a pure predicate over an incoming request. Every guard of a
// route entry must return true for the entry to be eligible. Guards must
// not mutate the request or perform side effects: a rejected guard has to
// leave the request untouched for the next candidate entry.
type Guard func(r *http.Request) bool

// MethodIs returns a guard that accepts requests with the given method.
func MethodIs(method string) Guard {
	return func(r *http.Request) bool {
		return r.Method == method
	}
}

// HeaderIs returns a guard that accepts requests carrying the given
// header value.
func HeaderIs(name, value string) Guard {
	return func(r *http.Request) bool {
		return r.Header.Get(name) == value
	}
}
