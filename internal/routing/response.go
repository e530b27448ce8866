package routing

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Responder is the "convertible to response" capability implemented by
// handler return values. The conversion must be deterministic and free of
// I/O; responses are constructed per request and never shared.
type Responder interface {
	IntoResponse() Response
}

// Response is the concrete wire-level response: status, headers, body.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// IntoResponse lets Response satisfy Responder directly.
func (resp Response) IntoResponse() Response {
	return resp
}

// Write serializes the response onto w. Content-Length is set explicitly
// so empty bodies report length zero instead of using chunked encoding.
func (resp Response) Write(w http.ResponseWriter) {
	header := w.Header()
	for name, values := range resp.Header {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	header.Set("Content-Length", strconv.Itoa(len(resp.Body)))

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}

// JSON renders Value as an application/json body with the given status.
type JSON struct {
	Status int
	Value  any
}

func (j JSON) IntoResponse() Response {
	body, err := json.Marshal(j.Value)
	if err != nil {
		// A value that cannot marshal is a programming error; degrade
		// to a bare 500 rather than corrupting the connection.
		return Response{Status: http.StatusInternalServerError}
	}
	header := make(http.Header, 1)
	header.Set("Content-Type", "application/json")
	return Response{Status: j.Status, Header: header, Body: body}
}

// NoContent renders an empty body with the given status.
type NoContent struct {
	Status int
}

func (n NoContent) IntoResponse() Response {
	return Response{Status: n.Status}
}

// Text renders a plain text body with the given status.
type Text struct {
	Status int
	Body   string
}

func (t Text) IntoResponse() Response {
	header := make(http.Header, 1)
	header.Set("Content-Type", "text/plain; charset=utf-8")
	return Response{Status: t.Status, Header: header, Body: []byte(t.Body)}
}
