package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"server/internal/domain"
	"server/internal/gate"
	"server/internal/middleware"
	"server/internal/youtube"
	"server/pkg/zip"
)

type fetchRequest struct {
	Links []string `json:"links"`
}

type fetchResult struct {
	Link    string `json:"link"`
	VideoID string `json:"video_id,omitempty"`
	Status  string `json:"status"` // invalid | unavailable | failed | saved
}

// TranscriptsFetch resolves each submitted link, downloads its transcript,
// and stores it. Per-link failures are reported in the result list instead
// of aborting the batch, mirroring one status line per pasted link.
func (a *App) TranscriptsFetch(w http.ResponseWriter, r *http.Request) {
	session := a.currentSession(r)
	profile, ok := a.loadProfile(r.Context(), session.UserID)
	if !ok {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	if mode := gate.ResolveMode(session, profile, gate.SurfaceDownloader, a.today()); mode != gate.ModeDownloader {
		a.denyByMode(w, mode)
		return
	}
	var req fetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	langs := middleware.LanguagesFromContext(r.Context())
	var results []fetchResult
	for _, link := range req.Links {
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}
		results = append(results, a.fetchOne(r, session.UserID, link, langs))
	}
	if len(results) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "no links provided")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"results": results})
}

func (a *App) fetchOne(r *http.Request, userID, link string, langs []language.Tag) fetchResult {
	vid, ok := youtube.VideoID(link)
	if !ok {
		return fetchResult{Link: link, Status: "invalid"}
	}
	segments, err := a.Fetcher.Fetch(r.Context(), vid, langs)
	if err != nil {
		status := "failed"
		if errors.Is(err, domain.ErrUnavailable) {
			status = "unavailable"
		} else {
			a.Logger.Error().Err(err).Str("video_id", vid).Msg("fetch transcript failed")
		}
		a.recordUsage(r.Context(), domain.UsageEvent{
			UserID: userID, VideoID: vid, Kind: domain.UsageKindTranscriptSave, Success: false,
			Properties: map[string]any{"status": status},
		})
		return fetchResult{Link: link, VideoID: vid, Status: status}
	}
	tr := &domain.Transcript{
		VideoID:  vid,
		Title:    fmt.Sprintf("Video %s", vid),
		Text:     youtube.JoinSegments(segments),
		Segments: segments,
	}
	if err := a.Transcripts.Save(r.Context(), tr); err != nil {
		a.Logger.Error().Err(err).Str("video_id", vid).Msg("save transcript failed")
		return fetchResult{Link: link, VideoID: vid, Status: "failed"}
	}
	a.recordUsage(r.Context(), domain.UsageEvent{
		UserID: userID, VideoID: vid, Kind: domain.UsageKindTranscriptSave, Success: true,
	})
	return fetchResult{Link: link, VideoID: vid, Status: "saved"}
}

// TranscriptsList returns the stored transcripts for the chat video picker.
func (a *App) TranscriptsList(w http.ResponseWriter, r *http.Request) {
	session := a.currentSession(r)
	profile, ok := a.loadProfile(r.Context(), session.UserID)
	if !ok {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	if mode := gate.ResolveMode(session, profile, gate.SurfaceDownloader, a.today()); mode != gate.ModeDownloader {
		a.denyByMode(w, mode)
		return
	}
	items, err := a.Transcripts.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list transcripts failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list transcripts")
		return
	}
	out := make([]map[string]any, 0, len(items))
	for _, tr := range items {
		out = append(out, map[string]any{
			"video_id":   tr.VideoID,
			"title":      tr.Title,
			"created_at": tr.CreatedAt.Format(time.RFC3339),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

// TranscriptsExport downloads every stored transcript as a zip of text files.
func (a *App) TranscriptsExport(w http.ResponseWriter, r *http.Request) {
	session := a.currentSession(r)
	profile, ok := a.loadProfile(r.Context(), session.UserID)
	if !ok {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	if mode := gate.ResolveMode(session, profile, gate.SurfaceDownloader, a.today()); mode != gate.ModeDownloader {
		a.denyByMode(w, mode)
		return
	}
	items, err := a.Transcripts.ListWithText(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("export transcripts failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to export transcripts")
		return
	}
	if len(items) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no transcripts stored yet")
		return
	}
	entries := make([]zip.Entry, 0, len(items))
	for _, tr := range items {
		entries = append(entries, zip.Entry{
			Filename: tr.VideoID + ".txt",
			Data:     []byte(tr.Text),
		})
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="transcripts.zip"`)
	_, _ = w.Write(zip.Archive(entries))
}
