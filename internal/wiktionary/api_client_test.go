package wiktionary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("action") {
		case "parse":
			if r.URL.Query().Get("page") == "missing" {
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"error": map[string]string{"code": "missingtitle", "info": "The page you specified doesn't exist."},
				})
				return
			}
			wikitext := `===Pronunciation===
* {{a|US}} {{IPA|en|/ˈwɔtɚ/}}
* {{audio|en|en-us-water.ogg|Audio (US)}}
* {{audio|en|en-uk-water.ogg|Audio (UK)}}
* {{audio|en|en-us-water.ogg|duplicate}}
`
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"parse": map[string]interface{}{
					"title":    "water",
					"wikitext": map[string]string{"*": wikitext},
				},
			})
		case "query":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"query": map[string]interface{}{
					"pages": map[string]interface{}{
						"1": map[string]interface{}{
							"title": "File:en-us-water.ogg",
							"imageinfo": []map[string]string{
								{"url": "https://upload.example.org/en-us-water.ogg"},
							},
						},
						"2": map[string]interface{}{
							"title": "File:en-uk-water.ogg",
							"imageinfo": []map[string]string{
								{"url": "https://upload.example.org/en-uk-water.ogg"},
							},
						},
					},
				},
			})
		default:
			http.Error(w, "unexpected action", http.StatusBadRequest)
		}
	}))
}

func TestAudioLookup(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewAPIClient(server.URL)
	client.rateLimiter.interval = 0

	files, err := client.AudioLookup(context.Background(), "water", false)
	if err != nil {
		t.Fatalf("AudioLookup: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 audio files, got %d", len(files))
	}
	if files[0].Accent != "us" || files[0].URL != "https://upload.example.org/en-us-water.ogg" {
		t.Errorf("unexpected first file: %+v", files[0])
	}
	if files[1].Accent != "uk" {
		t.Errorf("expected uk accent, got %q", files[1].Accent)
	}
}

func TestAudioLookup_USOnly(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewAPIClient(server.URL)
	client.rateLimiter.interval = 0

	files, err := client.AudioLookup(context.Background(), "water", true)
	if err != nil {
		t.Fatalf("AudioLookup: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 audio file, got %d", len(files))
	}
	if files[0].Accent != "us" {
		t.Errorf("expected us accent, got %q", files[0].Accent)
	}
}

func TestAudioLookup_MissingPage(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewAPIClient(server.URL)
	client.rateLimiter.interval = 0

	if _, err := client.AudioLookup(context.Background(), "missing", false); err == nil {
		t.Error("expected error for missing page")
	}
}

func TestInferAccent(t *testing.T) {
	tests := []struct {
		file     string
		expected string
	}{
		{"en-us-water.ogg", "us"},
		{"En-uk-water.oga", "uk"},
		{"en-au-water.ogg", "au"},
		{"LL-Q1860 (eng)-Back ache-water.wav", ""},
	}

	for _, tt := range tests {
		if got := inferAccent(tt.file); got != tt.expected {
			t.Errorf("inferAccent(%q) = %q, expected %q", tt.file, got, tt.expected)
		}
	}
}
