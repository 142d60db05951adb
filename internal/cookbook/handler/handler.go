package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"cookbook/internal/cookbook/models"
	dErrors "cookbook/pkg/domain-errors"
	"cookbook/pkg/platform/httputil"
	"cookbook/pkg/requestcontext"
)

// Service defines the interface for cookbook operations.
type Service interface {
	CreateEntry(ctx context.Context, req *models.CreateEntryRequest) error
	GetSummary(ctx context.Context, name string) (*models.Summary, error)
	Reset(ctx context.Context) error
	ParseName(ctx context.Context, raw string) (string, error)
	Stats(ctx context.Context) (models.Counts, error)
}

// Handler wires cookbook endpoints to the cookbook service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a cookbook handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts cookbook endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/entry", h.HandleCreateEntry)
	r.Get("/summary", h.HandleSummary)
	r.Post("/parse", h.HandleParse)
	r.Post("/reset", h.HandleReset)
	r.Get("/healthz", h.HandleHealth)
}

// HandleCreateEntry handles POST /entry requests.
func (h *Handler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[EntryRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.CreateEntry(ctx, req.ToModel()); err != nil {
		h.logger.WarnContext(ctx, "create entry failed",
			"request_id", requestID,
			"name", req.Name,
			"type", req.Type,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleSummary handles GET /summary?name= requests.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "name query parameter is required"))
		return
	}

	summary, err := h.service.GetSummary(ctx, name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "recipe summarized",
		"request_id", requestID,
		"name", name,
		"cook_time", summary.CookTime,
		"ingredients", len(summary.Ingredients),
		"duration_ms", time.Since(requestcontext.Now(ctx)).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromSummary(summary))
}

// HandleParse handles POST /parse requests.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	name, err := h.service.ParseName(ctx, req.Input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ParseResponse{Msg: name})
}

// HandleReset handles POST /reset requests.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.Reset(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reset failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles GET /healthz requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Stats(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Entries: counts})
}
