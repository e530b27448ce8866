package apitest

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
)

func TestHealthCheckReturns200WithEmptyBody(t *testing.T) {
	app := Spawn(t)

	req, err := http.NewRequest(http.MethodGet, app.BaseURL+"/health_check", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	// The probe must behave identically regardless of headers sent.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Probe", "kubelet")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.ContentLength != 0 {
		t.Errorf("content-length = %d, want 0", resp.ContentLength)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestHealthCheckRejectsOtherMethodsWith404(t *testing.T) {
	app := Spawn(t)

	// Method mismatch is a guard rejection that falls through; with no
	// other matching entry it collapses into 404, not 405.
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req, err := http.NewRequest(method, app.BaseURL+"/health_check", nil)
		if err != nil {
			t.Fatalf("building %s request: %v", method, err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s request failed: %v", method, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s /health_check status = %d, want 404", method, resp.StatusCode)
		}
	}
}

func TestHealthCheckUnderConcurrentLoad(t *testing.T) {
	app := Spawn(t)

	const n = 50
	var wg sync.WaitGroup
	errc := make(chan error, n)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			resp, err := http.Get(app.BaseURL + "/health_check")
			if err != nil {
				errc <- err
				return
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				errc <- err
				return
			}
			if resp.StatusCode != http.StatusOK || len(body) != 0 {
				errc <- fmt.Errorf("status = %d, body length = %d, want 200 with empty body", resp.StatusCode, len(body))
			}
		}()
	}
	wg.Wait()
	close(errc)

	for err := range errc {
		t.Error(err)
	}
}
