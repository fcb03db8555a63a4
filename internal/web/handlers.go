package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/domain"
	"github.com/genricoloni/vudia/internal/library"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBodySize bounds request bodies; every payload here is a few fields
const maxBodySize = 64 << 10

// Handlers contains the HTTP handlers of the API
type Handlers struct {
	logger  *zap.Logger
	player  domain.Player
	store   *catalog.Store
	library *library.Library
	artwork domain.ArtworkSource
}

// NewHandlers creates a new Handlers instance
func NewHandlers(logger *zap.Logger, player domain.Player, store *catalog.Store, lib *library.Library, artwork domain.ArtworkSource) *Handlers {
	return &Handlers{
		logger:  logger,
		player:  player,
		store:   store,
		library: lib,
		artwork: artwork,
	}
}

// stateResponse is the player state as seen by API clients
type stateResponse struct {
	domain.PlaybackSnapshot
	PositionMs int64 `json:"positionMs"`
	DurationMs int64 `json:"durationMs"`
	Liked      bool  `json:"liked"`
}

func (h *Handlers) state() stateResponse {
	snap := h.player.Snapshot()
	resp := stateResponse{
		PlaybackSnapshot: snap,
		PositionMs:       h.player.Position().Milliseconds(),
		DurationMs:       h.player.Duration().Milliseconds(),
	}
	if snap.Track != nil {
		resp.Liked = h.library.IsLiked(snap.Track.ID)
	}
	return resp
}

// State returns the current player state (GET /api/state)
func (h *Handlers) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state())
}

// command wraps a player command; the response is the state after it ran
func (h *Handlers) command(fn func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn()
		writeJSON(w, http.StatusOK, h.state())
	}
}

type seekRequest struct {
	Seconds float64 `json:"seconds"`
}

// Seek moves the playback position (POST /api/player/seek)
func (h *Handlers) Seek(w http.ResponseWriter, r *http.Request) {
	var req seekRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.player.Seek(time.Duration(req.Seconds * float64(time.Second)))
	writeJSON(w, http.StatusOK, h.state())
}

// Tracks lists the catalog (GET /api/tracks)
func (h *Handlers) Tracks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Tracks())
}

// Search filters the catalog by title or artist (GET /api/tracks/search?q=)
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Search(r.URL.Query().Get("q")))
}

// Track returns one catalog entry (GET /api/tracks/{id})
func (h *Handlers) Track(w http.ResponseWriter, r *http.Request) {
	track, ok := h.trackParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, track)
}

// PlayTrack selects a track and starts it (POST /api/tracks/{id}/play)
func (h *Handlers) PlayTrack(w http.ResponseWriter, r *http.Request) {
	track, ok := h.trackParam(w, r)
	if !ok {
		return
	}
	h.player.SelectTrack(track.ID)
	writeJSON(w, http.StatusOK, h.state())
}

// ToggleLike flips the liked flag of a track (POST /api/tracks/{id}/like)
func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	track, ok := h.trackParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"liked": h.library.ToggleLike(track.ID)})
}

// Sections returns the home rows (GET /api/sections)
func (h *Handlers) Sections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Sections())
}

// Artists returns the artist index (GET /api/artists)
func (h *Handlers) Artists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Artists())
}

// Playlists lists playlists, optionally filtered by name (GET /api/playlists?q=)
func (h *Handlers) Playlists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.library.Playlists(r.URL.Query().Get("q")))
}

type createPlaylistRequest struct {
	Name string `json:"name"`
}

// CreatePlaylist adds a playlist (POST /api/playlists)
func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.library.CreatePlaylist(req.Name)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Playlist returns one playlist (GET /api/playlists/{id})
func (h *Handlers) Playlist(w http.ResponseWriter, r *http.Request) {
	id, ok := playlistParam(w, r)
	if !ok {
		return
	}
	p, err := h.library.Playlist(id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePlaylist removes a playlist (DELETE /api/playlists/{id})
func (h *Handlers) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	id, ok := playlistParam(w, r)
	if !ok {
		return
	}
	if err := h.library.DeletePlaylist(id); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addTrackRequest struct {
	TrackID int `json:"trackId"`
}

// AddToPlaylist appends a catalog track (POST /api/playlists/{id}/tracks)
func (h *Handlers) AddToPlaylist(w http.ResponseWriter, r *http.Request) {
	id, ok := playlistParam(w, r)
	if !ok {
		return
	}
	var req addTrackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if _, found := h.store.Get(req.TrackID); !found {
		writeError(w, http.StatusNotFound, "track not found")
		return
	}
	p, err := h.library.AddTrack(id, req.TrackID)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// LibraryView renders a library detail screen (GET /api/library/{view}?limit=)
func (h *Handlers) LibraryView(w http.ResponseWriter, r *http.Request) {
	kind, err := library.ParseViewKind(chi.URLParam(r, "view"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	limit := library.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	view, err := h.library.View(h.store, kind, limit)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Preferences returns the settings (GET /api/preferences)
func (h *Handlers) Preferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.library.Preferences())
}

type preferencesPatch struct {
	Quality       *library.Quality `json:"quality"`
	DataSaver     *bool            `json:"dataSaver"`
	Notifications *bool            `json:"notifications"`
	DarkMode      *bool            `json:"darkMode"`
}

// UpdatePreferences applies the fields present in the body (PATCH /api/preferences)
func (h *Handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var patch preferencesPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.Quality != nil && !patch.Quality.Valid() {
		writeError(w, http.StatusBadRequest, "invalid quality")
		return
	}

	prefs := h.library.UpdatePreferences(func(p *library.Preferences) {
		if patch.Quality != nil {
			p.Quality = *patch.Quality
		}
		if patch.DataSaver != nil {
			p.DataSaver = *patch.DataSaver
		}
		if patch.Notifications != nil {
			p.Notifications = *patch.Notifications
		}
		if patch.DarkMode != nil {
			p.DarkMode = *patch.DarkMode
		}
	})
	writeJSON(w, http.StatusOK, prefs)
}

// Profile returns the account card (GET /api/profile)
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.library.Profile())
}

// UpdateProfile edits the account card (PUT /api/profile)
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p library.Profile
	if !decodeJSON(w, r, &p) {
		return
	}
	writeJSON(w, http.StatusOK, h.library.UpdateProfile(p))
}

// CurrentArtwork describes the now-playing artwork (GET /api/artwork/current)
func (h *Handlers) CurrentArtwork(w http.ResponseWriter, r *http.Request) {
	art, ok := h.artwork.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no artwork rendered yet")
		return
	}
	writeJSON(w, http.StatusOK, art)
}

// ArtworkFile serves a rendered image (GET /api/artwork/{id}/{backdrop|thumbnail})
func (h *Handlers) ArtworkFile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid track id")
		return
	}
	art, ok := h.artwork.Artwork(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no artwork for track")
		return
	}

	switch chi.URLParam(r, "kind") {
	case "backdrop":
		http.ServeFile(w, r, art.Backdrop)
	case "thumbnail":
		http.ServeFile(w, r, art.Thumbnail)
	default:
		writeError(w, http.StatusNotFound, "unknown artwork kind")
	}
}

func (h *Handlers) trackParam(w http.ResponseWriter, r *http.Request) (*domain.Track, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid track id")
		return nil, false
	}
	track, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "track not found")
		return nil, false
	}
	return track, true
}

func playlistParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid playlist id")
		return uuid.Nil, false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, library.ErrPlaylistNotFound), errors.Is(err, library.ErrUnknownView):
		return http.StatusNotFound
	case errors.Is(err, library.ErrEmptyName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
