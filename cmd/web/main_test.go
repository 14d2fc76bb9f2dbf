package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLandingPage(t *testing.T) {
	h := landingPage("play.example.com", []string{"classic", "flee"})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "ssh -t play.example.com -p 2222") {
		t.Errorf("page missing ssh command")
	}
	if !strings.Contains(body, "classic | flee") {
		t.Errorf("page missing variants")
	}
	if strings.Contains(body, "{{") {
		t.Errorf("page has unreplaced placeholders")
	}
}

func TestLandingPageNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	landingPage("h", nil)(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
