package apitest

import (
	"io"
	"net/http"
	"testing"
)

func TestUnknownPathReturns404ForAnyMethod(t *testing.T) {
	app := Spawn(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		req, err := http.NewRequest(method, app.BaseURL+"/no/such/route", nil)
		if err != nil {
			t.Fatalf("building %s request: %v", method, err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s request failed: %v", method, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s /no/such/route status = %d, want 404", method, resp.StatusCode)
		}
		if len(body) != 0 {
			t.Errorf("%s /no/such/route body = %q, want empty", method, body)
		}
	}
}

func TestRequestIDHeaderIsEchoed(t *testing.T) {
	app := Spawn(t)

	req, err := http.NewRequest(http.MethodGet, app.BaseURL+"/health_check", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("X-Request-ID", "corr-42")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "corr-42" {
		t.Errorf("X-Request-ID = %q, want the incoming id echoed back", got)
	}
}

func TestRequestIDIsGeneratedWhenAbsent(t *testing.T) {
	app := Spawn(t)

	resp, err := http.Get(app.BaseURL + "/health_check")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing, want a generated id")
	}
}

func TestConcurrentInstancesGetDistinctPorts(t *testing.T) {
	first := Spawn(t)
	second := Spawn(t)

	if first.BaseURL == second.BaseURL {
		t.Fatalf("both instances bound %s, want distinct ephemeral ports", first.BaseURL)
	}

	for _, app := range []*App{first, second} {
		resp, err := http.Get(app.BaseURL + "/health_check")
		if err != nil {
			t.Fatalf("health check against %s failed: %v", app.BaseURL, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check against %s status = %d, want 200", app.BaseURL, resp.StatusCode)
		}
	}
}
