package wiktionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

// APIClient implements Client against the Wiktionary MediaWiki API: a
// page-parse call to find the entry's audio file names, then an imageinfo
// call to resolve them to file URLs.
type APIClient struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		time.Sleep(r.interval - since)
	}
	r.lastCall = time.Now()
}

// NewAPIClient creates a Wiktionary API client. baseURL defaults to the
// English Wiktionary api.php endpoint when empty.
func NewAPIClient(baseURL string) *APIClient {
	if baseURL == "" {
		baseURL = "https://en.wiktionary.org/w/api.php"
	}
	return &APIClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     baseURL,
		userAgent:   "Lexicon/1.0 (accent coaching; audio lookup)",
		rateLimiter: newRateLimiter(500 * time.Millisecond),
	}
}

func (c *APIClient) Name() string {
	return "wiktionary"
}

// audioTemplateRe matches {{audio|en|File name.ogg|...}} wikitext templates.
var audioTemplateRe = regexp.MustCompile(`\{\{audio\|en\|([^|}]+)`)

// AudioLookup returns the audio pronunciation files for a word, with the
// accent inferred from each file name. With usOnly set, only US-accent
// files are returned.
func (c *APIClient) AudioLookup(ctx context.Context, word string, usOnly bool) ([]AudioFile, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("empty word")
	}

	files, err := c.parseAudioFileNames(ctx, word)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	urls, err := c.resolveFileURLs(ctx, files)
	if err != nil {
		return nil, err
	}

	var results []AudioFile
	for _, file := range files {
		fileURL, ok := urls[file]
		if !ok {
			continue
		}
		accent := inferAccent(file)
		if usOnly && accent != "us" {
			continue
		}
		results = append(results, AudioFile{
			File:   file,
			URL:    fileURL,
			Accent: accent,
		})
	}
	return results, nil
}

// parseAudioFileNames fetches the entry's wikitext and extracts the audio
// template file names.
func (c *APIClient) parseAudioFileNames(ctx context.Context, word string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", word)
	params.Set("prop", "wikitext")
	params.Set("format", "json")

	var response parseResponse
	if err := c.get(ctx, params, &response); err != nil {
		return nil, err
	}
	if response.Error != nil {
		if response.Error.Code == "missingtitle" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, word)
		}
		return nil, fmt.Errorf("wiktionary parse error: %s", response.Error.Info)
	}

	seen := make(map[string]bool)
	var files []string
	for _, match := range audioTemplateRe.FindAllStringSubmatch(response.Parse.Wikitext.Text, -1) {
		name := strings.TrimSpace(match[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		files = append(files, name)
	}
	return files, nil
}

// resolveFileURLs maps audio file names to their served URLs via imageinfo.
func (c *APIClient) resolveFileURLs(ctx context.Context, files []string) (map[string]string, error) {
	titles := make([]string, len(files))
	for i, f := range files {
		titles[i] = "File:" + f
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", strings.Join(titles, "|"))
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("format", "json")

	var response queryResponse
	if err := c.get(ctx, params, &response); err != nil {
		return nil, err
	}

	urls := make(map[string]string)
	for _, page := range response.Query.Pages {
		name := strings.TrimPrefix(page.Title, "File:")
		if len(page.ImageInfo) > 0 && page.ImageInfo[0].URL != "" {
			urls[name] = page.ImageInfo[0].URL
		}
	}
	return urls, nil
}

func (c *APIClient) get(ctx context.Context, params url.Values, out interface{}) error {
	c.rateLimiter.wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch from wiktionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// inferAccent guesses the accent/region from a pronunciation file name,
// e.g. "en-us-water.ogg" or "En-uk-water.oga".
func inferAccent(file string) string {
	lower := strings.ToLower(file)
	switch {
	case strings.Contains(lower, "en-us") || strings.Contains(lower, "(us)") || strings.Contains(lower, "-us-"):
		return "us"
	case strings.Contains(lower, "en-uk") || strings.Contains(lower, "en-gb") || strings.Contains(lower, "(rp)") || strings.Contains(lower, "-uk-"):
		return "uk"
	case strings.Contains(lower, "en-au") || strings.Contains(lower, "(au)"):
		return "au"
	default:
		return ""
	}
}

// Wiktionary API response types

type parseResponse struct {
	Parse struct {
		Title    string `json:"title"`
		Wikitext struct {
			Text string `json:"*"`
		} `json:"wikitext"`
	} `json:"parse"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type queryResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			ImageInfo []struct {
				URL string `json:"url"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}
