package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"server/internal/domain"
)

const (
	defaultBaseURL       = "https://www.youtube.com"
	clientDefaultTimeout = 15 * time.Second

	// Watch pages embed player config inline; 10 MiB is comfortably above
	// anything YouTube serves today.
	maxWatchPageBytes = 10 << 20
)

// ClientOptions configures the transcript client.
type ClientOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Languages  []string // preferred caption languages, most preferred first
}

// Client downloads caption transcripts by scraping the watch page for its
// caption track list and fetching the referenced timedtext document.
type Client struct {
	baseURL string
	client  *http.Client
	prefs   []string
}

// NewClient constructs a transcript client with sane defaults.
func NewClient(opts ClientOptions) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: clientDefaultTimeout}
	}
	prefs := opts.Languages
	if len(prefs) == 0 {
		prefs = []string{"en"}
	}
	return &Client{baseURL: baseURL, client: client, prefs: prefs}
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated tracks
}

type timedtextDoc struct {
	XMLName xml.Name       `xml:"transcript"`
	Cues    []timedtextCue `xml:"text"`
}

type timedtextCue struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

// Fetch downloads the transcript for a video. Videos without any caption
// track, as well as videos whose watch page cannot be located, resolve to
// domain.ErrUnavailable; transport failures surface as ordinary errors.
func (c *Client) Fetch(ctx context.Context, videoID string, prefs []language.Tag) ([]domain.Segment, error) {
	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, domain.ErrUnavailable
	}
	track := pickTrack(tracks, preferenceStrings(prefs, c.prefs))
	segments, err := c.timedtext(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, domain.ErrUnavailable
	}
	return segments, nil
}

func (c *Client) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	endpoint := fmt.Sprintf("%s/watch?v=%s", c.baseURL, url.QueryEscape(videoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build watch request: %w", err)
	}
	req.Header.Set("Accept-Language", strings.Join(c.prefs, ","))
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; transcript-fetcher)")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: fetch watch page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrUnavailable
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("youtube: watch page status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWatchPageBytes))
	if err != nil {
		return nil, fmt.Errorf("youtube: read watch page: %w", err)
	}
	const marker = `"captionTracks":`
	idx := strings.Index(string(body), marker)
	if idx < 0 {
		return nil, domain.ErrUnavailable
	}
	var tracks []captionTrack
	dec := json.NewDecoder(strings.NewReader(string(body[idx+len(marker):])))
	if err := dec.Decode(&tracks); err != nil {
		return nil, fmt.Errorf("youtube: decode caption tracks: %w", err)
	}
	return tracks, nil
}

func (c *Client) timedtext(ctx context.Context, trackURL string) ([]domain.Segment, error) {
	endpoint := trackURL
	// Test servers hand out relative track URLs; production baseUrl values
	// are absolute.
	if strings.HasPrefix(endpoint, "/") {
		endpoint = c.baseURL + endpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build timedtext request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: fetch timedtext: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("youtube: timedtext status %d", resp.StatusCode)
	}
	var doc timedtextDoc
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("youtube: decode timedtext: %w", err)
	}
	segments := make([]domain.Segment, 0, len(doc.Cues))
	for _, cue := range doc.Cues {
		text := strings.TrimSpace(html.UnescapeString(cue.Body))
		if text == "" {
			continue
		}
		segments = append(segments, domain.Segment{
			Text:     text,
			Start:    cue.Start,
			Duration: cue.Dur,
		})
	}
	return segments, nil
}

// pickTrack selects the caption track best matching the caller's language
// preferences. Manually authored tracks beat auto-generated ones: when at
// least one manual track exists, ASR tracks are not considered at all.
func pickTrack(tracks []captionTrack, prefs []string) captionTrack {
	candidates := tracks
	var manual []captionTrack
	for _, tr := range tracks {
		if tr.Kind != "asr" {
			manual = append(manual, tr)
		}
	}
	if len(manual) > 0 {
		candidates = manual
	}
	if len(candidates) == 1 || len(prefs) == 0 {
		return candidates[0]
	}
	tags := make([]language.Tag, len(candidates))
	for i, tr := range candidates {
		tags[i] = language.Make(tr.LanguageCode)
	}
	matcher := language.NewMatcher(tags)
	_, idx := language.MatchStrings(matcher, prefs...)
	if idx < 0 || idx >= len(candidates) {
		return candidates[0]
	}
	return candidates[idx]
}

func preferenceStrings(request []language.Tag, fallback []string) []string {
	if len(request) == 0 {
		return fallback
	}
	out := make([]string, len(request))
	for i, tag := range request {
		out[i] = tag.String()
	}
	return out
}

// JoinSegments renders segments into the newline-joined text stored next to
// the timed form, mirroring how transcripts were persisted historically.
func JoinSegments(segments []domain.Segment) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = seg.Text
	}
	return strings.Join(parts, "\n")
}
