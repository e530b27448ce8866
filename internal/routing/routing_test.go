package routing

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func newTestRouter() *Router {
	logger := zerolog.Nop()
	return New(&logger)
}

func get(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func okHandler(name string) HandlerFunc {
	return func(*http.Request) (Responder, error) {
		return Text{Status: http.StatusOK, Body: name}, nil
	}
}

func TestDispatchLiteralMatch(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/health_check", okHandler("health"), MethodIs(http.MethodGet))

	resp := rt.Dispatch(get("/health_check"))
	if resp.Status != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Status)
	}
	if string(resp.Body) != "health" {
		t.Errorf("body = %q, want %q", resp.Body, "health")
	}
}

func TestDispatchNoMatchReturns404EmptyBody(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/health_check", okHandler("health"), MethodIs(http.MethodGet))

	for _, path := range []string{"/missing", "/health_check/extra", "/"} {
		resp := rt.Dispatch(get(path))
		if resp.Status != http.StatusNotFound {
			t.Errorf("Dispatch(%q) status = %d, want 404", path, resp.Status)
		}
		if len(resp.Body) != 0 {
			t.Errorf("Dispatch(%q) body length = %d, want 0", path, len(resp.Body))
		}
	}
}

func TestGuardRejectionFallsThroughTo404(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/health_check", okHandler("health"), MethodIs(http.MethodGet))

	req := httptest.NewRequest(http.MethodPost, "/health_check", nil)
	resp := rt.Dispatch(req)
	if resp.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (guard rejection is not a distinct error)", resp.Status)
	}
	if len(resp.Body) != 0 {
		t.Errorf("body length = %d, want 0", len(resp.Body))
	}
}

func TestGuardRejectionFallsThroughToNextEntry(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/report", okHandler("post"), MethodIs(http.MethodPost))
	rt.Register("/report", okHandler("get"), MethodIs(http.MethodGet))

	resp := rt.Dispatch(get("/report"))
	if string(resp.Body) != "get" {
		t.Fatalf("body = %q, want fall-through to second entry %q", resp.Body, "get")
	}
}

func TestRegistrationOrderPrecedence(t *testing.T) {
	// First full match wins: a parameter route registered before a
	// literal route shadows it.
	rt := newTestRouter()
	rt.Register("/{name}", func(r *http.Request) (Responder, error) {
		return Text{Status: http.StatusOK, Body: "param:" + Param(r.Context(), "name")}, nil
	}, MethodIs(http.MethodGet))
	rt.Register("/health_check", okHandler("literal"), MethodIs(http.MethodGet))

	resp := rt.Dispatch(get("/health_check"))
	if string(resp.Body) != "param:health_check" {
		t.Fatalf("body = %q, want the first-registered parameter route to win", resp.Body)
	}
}

func TestParamBinding(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/subscriptions/{id}/status", func(r *http.Request) (Responder, error) {
		return Text{Status: http.StatusOK, Body: Param(r.Context(), "id")}, nil
	}, MethodIs(http.MethodGet))

	resp := rt.Dispatch(get("/subscriptions/abc-123/status"))
	if resp.Status != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Status)
	}
	if string(resp.Body) != "abc-123" {
		t.Errorf("bound id = %q, want %q", resp.Body, "abc-123")
	}
}

func TestHandlerErrorMapsTo500ByDefault(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/boom", func(*http.Request) (Responder, error) {
		return nil, errors.New("kaput")
	}, MethodIs(http.MethodGet))

	resp := rt.Dispatch(get("/boom"))
	if resp.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.Status)
	}
	if len(resp.Body) != 0 {
		t.Errorf("body length = %d, want 0", len(resp.Body))
	}
}

func TestOnErrorInstallsCustomFunnel(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/boom", func(*http.Request) (Responder, error) {
		return nil, errors.New("kaput")
	})
	rt.OnError(func(_ *http.Request, err error) Response {
		return Text{Status: http.StatusBadGateway, Body: err.Error()}.IntoResponse()
	})

	resp := rt.Dispatch(get("/boom"))
	if resp.Status != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502 from custom funnel", resp.Status)
	}
	if string(resp.Body) != "kaput" {
		t.Errorf("body = %q, want %q", resp.Body, "kaput")
	}
}

func TestServeHTTPWritesDispatchResult(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/health_check", func(*http.Request) (Responder, error) {
		return NoContent{Status: http.StatusOK}, nil
	}, MethodIs(http.MethodGet))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, get("/health_check"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body length = %d, want 0", rec.Body.Len())
	}
	if got := rec.Header().Get("Content-Length"); got != "0" {
		t.Errorf("Content-Length = %q, want %q", got, "0")
	}
}

func TestConcurrentDispatchSharesOnlyTheTable(t *testing.T) {
	rt := newTestRouter()
	rt.Register("/health_check", func(*http.Request) (Responder, error) {
		return NoContent{Status: http.StatusOK}, nil
	}, MethodIs(http.MethodGet))

	const n = 64
	var wg sync.WaitGroup
	errc := make(chan error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			resp := rt.Dispatch(get("/health_check"))
			if resp.Status != http.StatusOK || len(resp.Body) != 0 {
				errc <- errors.New("unexpected response under concurrency")
			}
		}()
	}
	wg.Wait()
	close(errc)
	for err := range errc {
		t.Error(err)
	}
}
