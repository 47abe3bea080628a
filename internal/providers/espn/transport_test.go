package espn

import (
	"net/http"
	"testing"
	"time"
)

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 0)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", httpClient.Timeout)
	}

	custom := resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if custom.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", custom.Timeout)
	}

	provided := &http.Client{}
	if resolveHTTPClient(provided, time.Second) != httpDoer(provided) {
		t.Fatalf("expected provided client to be used")
	}
}
