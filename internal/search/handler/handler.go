// Package handler wires the search engine to HTTP. It parses the request,
// runs the routing rule table, and renders results or redirects.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"courtfinder/internal/audit"
	"courtfinder/internal/courts/models"
	"courtfinder/internal/platform/middleware"
	"courtfinder/internal/search"
	"courtfinder/internal/search/postcode"
	"courtfinder/internal/search/rules"
	dErrors "courtfinder/pkg/domain-errors"
	"courtfinder/pkg/platform/httputil"
)

// Service defines the search operations the handler needs.
type Service interface {
	SearchByText(ctx context.Context, raw string) (*search.Result, error)
	SearchByPostcode(ctx context.Context, rawPostcode, areaOfLaw string) (*search.Result, error)
	SinglePointOfEntry(ctx context.Context, areaOfLaw string) (bool, error)
	AreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error)
}

// Auditor records executed searches. The publisher satisfies it; nil
// disables the trail.
type Auditor interface {
	Emit(event audit.Event)
}

// Handler wires search endpoints to the search service.
type Handler struct {
	service Service
	logger  *slog.Logger
	auditor Auditor
	table   []rules.Rule
}

// New constructs a search handler with its dependencies.
func New(service Service, logger *slog.Logger, auditor Auditor) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		auditor: auditor,
		table:   rules.Table(),
	}
}

// Register mounts search endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/search/results", h.HandleResults)
	r.Get("/search/results.json", h.HandleResults)
	r.Get("/search/areas-of-law", h.HandleAreasOfLaw)
}

// HandleResults handles GET /search/results requests. Query parameters:
// q (free text), postcode, aol (area of law), spoe.
func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()

	params := r.URL.Query()
	view := rules.View{
		HasQueryParam:    params.Has("q"),
		Query:            strings.TrimSpace(params.Get("q")),
		HasPostcodeParam: params.Has("postcode"),
		Postcode:         strings.TrimSpace(params.Get("postcode")),
		AreaOfLaw:        strings.TrimSpace(params.Get("aol")),
		SPOE:             strings.TrimSpace(params.Get("spoe")),
	}

	// The clarifying-step rule needs to know whether the area of law has a
	// single point of entry; that is a store lookup, so resolve it here and
	// keep the table pure.
	if view.HasPostcodeParam && view.Postcode != "" && view.AreaOfLaw != "" && view.AreaOfLaw != search.AreaOfLawAll {
		spoe, err := h.service.SinglePointOfEntry(ctx, view.AreaOfLaw)
		var unknown *search.UnknownAreaOfLawError
		switch {
		case errors.As(err, &unknown):
			view.UnknownAreaOfLaw = true
		case err != nil:
			h.writeSearchError(ctx, w, requestID, view, err)
			return
		default:
			view.SinglePointOfEntry = spoe
		}
	}

	if h.applyRules(ctx, w, r, requestID, view) {
		return
	}

	var (
		result *search.Result
		err    error
		kind   string
	)
	if view.HasQueryParam {
		kind = "text"
		result, err = h.service.SearchByText(ctx, view.Query)
	} else {
		kind = "postcode"
		result, err = h.service.SearchByPostcode(ctx, view.Postcode, view.AreaOfLaw)
	}

	if err != nil {
		if postcode.IsInvalid(err) {
			view.InvalidPostcode = true
			if h.applyRules(ctx, w, r, requestID, view) {
				h.emit(view, kind, 0, "invalid_postcode", requestID)
				return
			}
		}
		h.writeSearchError(ctx, w, requestID, view, err)
		h.emit(view, kind, 0, "error", requestID)
		return
	}

	h.logger.InfoContext(ctx, "search executed",
		"request_id", requestID,
		"kind", kind,
		"aol", view.AreaOfLaw,
		"results", len(result.Courts),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	h.emit(view, kind, len(result.Courts), outcome(result), requestID)

	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleAreasOfLaw handles GET /search/areas-of-law requests.
func (h *Handler) HandleAreasOfLaw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	areas, err := h.service.AreasOfLaw(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "areas of law listing failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "areas of law unavailable"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"areas_of_law": areas})
}

// applyRules evaluates the rule table and issues the redirect or rejection
// when one matches. Reports whether the request was handled.
func (h *Handler) applyRules(ctx context.Context, w http.ResponseWriter, r *http.Request, requestID string, view rules.View) bool {
	action, name := rules.Evaluate(h.table, view)
	switch action.Kind {
	case rules.Redirect:
		h.logger.InfoContext(ctx, "search redirected",
			"request_id", requestID,
			"rule", name,
			"location", action.Location(),
		)
		http.Redirect(w, r, action.Location(), http.StatusFound)
		return true
	case rules.Reject:
		h.logger.InfoContext(ctx, "search rejected",
			"request_id", requestID,
			"rule", name,
			"reason", action.Reason,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, action.Reason))
		return true
	default:
		return false
	}
}

func (h *Handler) writeSearchError(ctx context.Context, w http.ResponseWriter, requestID string, view rules.View, err error) {
	var unknown *search.UnknownAreaOfLawError
	switch {
	case errors.As(err, &unknown):
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "unknown area of law"))
		return
	case postcode.IsProviderError(err):
		h.logger.ErrorContext(ctx, "postcode provider failed",
			"request_id", requestID,
			"postcode", view.Postcode,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "postcode lookup unavailable"))
		return
	default:
		h.logger.ErrorContext(ctx, "search failed",
			"request_id", requestID,
			"aol", view.AreaOfLaw,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "search failed"))
	}
}

func (h *Handler) emit(view rules.View, kind string, results int, outcome, requestID string) {
	if h.auditor == nil {
		return
	}
	h.auditor.Emit(audit.Event{
		RequestID: requestID,
		Kind:      kind,
		Query:     view.Query,
		Postcode:  view.Postcode,
		AreaOfLaw: view.AreaOfLaw,
		Results:   results,
		Outcome:   outcome,
	})
}

func outcome(result *search.Result) string {
	switch {
	case result.NoRegionalCoverage:
		return "no_coverage"
	case len(result.Courts) == 0:
		return "empty"
	default:
		return "results"
	}
}
