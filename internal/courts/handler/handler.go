// Package handler exposes the venue read API.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"courtfinder/internal/courts/models"
	"courtfinder/internal/courts/store"
	"courtfinder/internal/platform/middleware"
	dErrors "courtfinder/pkg/domain-errors"
	"courtfinder/pkg/platform/httputil"
	"courtfinder/pkg/platform/sentinel"
)

// Handler wires venue endpoints to the court store.
type Handler struct {
	store  store.Reader
	logger *slog.Logger
}

// New constructs a courts handler.
func New(st store.Reader, logger *slog.Logger) *Handler {
	return &Handler{store: st, logger: logger}
}

// Register mounts venue endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/courts", h.HandleList)
	r.Get("/courts/{slug}", h.HandleCourt)
}

// HandleCourt handles GET /courts/{slug} requests.
func (h *Handler) HandleCourt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	court, err := h.store.CourtBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "court not found"))
			return
		}
		h.logger.ErrorContext(ctx, "court lookup failed",
			"request_id", middleware.GetRequestID(ctx),
			"slug", slug,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "court lookup failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, court)
}

// HandleList handles GET /courts?letter=A requests: venues whose name starts
// with the letter, undisplayed venues excluded.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	letter := strings.TrimSpace(r.URL.Query().Get("letter"))
	if len(letter) != 1 || !isLetter(letter[0]) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "letter must be a single character a-z"))
		return
	}

	courts, err := h.store.CourtsByNameInitial(ctx, letter)
	if err != nil {
		h.logger.ErrorContext(ctx, "court listing failed",
			"request_id", middleware.GetRequestID(ctx),
			"letter", letter,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "court listing failed"))
		return
	}
	if courts == nil {
		courts = []*models.Court{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"courts": courts})
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
