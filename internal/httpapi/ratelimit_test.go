package httpapi

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_SlidingWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	l := newRateLimiter(3, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !l.Allow("a") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("a") {
		t.Fatal("fourth request in window should be rejected")
	}

	// Other keys are independent.
	if !l.Allow("b") {
		t.Fatal("different key should be allowed")
	}

	// Window slides: old hits expire.
	now = now.Add(61 * time.Second)
	if !l.Allow("a") {
		t.Fatal("request after window should be allowed")
	}
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := clientKey(r); got != "1.2.3.4" {
		t.Fatalf("unexpected key: %q", got)
	}

	r = httptest.NewRequest("POST", "/", nil)
	r.Header.Set("X-Real-IP", "9.9.9.9")
	if got := clientKey(r); got != "9.9.9.9" {
		t.Fatalf("unexpected key: %q", got)
	}

	r = httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "192.0.2.1:1234"
	if got := clientKey(r); got != "192.0.2.1" {
		t.Fatalf("unexpected key: %q", got)
	}
}
