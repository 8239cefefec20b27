package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/models"
)

type appsResponse struct {
	Apps []string `json:"apps"`
}

type refreshResponse struct {
	AppID       string `json:"app_id,omitempty"`
	Invalidated int    `json:"invalidated"`
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	utils.WriteError(w, err.Error(), status)
}

func (h *Handler) listApps(w http.ResponseWriter, r *http.Request) {
	apps := h.services.ConfigService.AvailableApps(r.Context())
	if apps == nil {
		apps = []string{}
	}
	utils.WriteJSON(w, appsResponse{Apps: apps}, http.StatusOK)
}

func (h *Handler) getConfiguration(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.services.ConfigService.GetConfiguration(r.Context(), chi.URLParam(r, "appID"))
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getConfiguration", err)
		return
	}

	writeJSONWithETag(w, r, resolved)
}

func (h *Handler) getValue(w http.ResponseWriter, r *http.Request) {
	appID, key := chi.URLParam(r, "appID"), chi.URLParam(r, "key")

	res, err := h.services.ConfigService.GetValue(r.Context(), appID, key)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getValue", err)
		return
	}

	status := http.StatusOK
	if !res.Success {
		status = http.StatusNotFound
	}
	utils.WriteJSON(w, res, status)
}

func (h *Handler) resolveValues(w http.ResponseWriter, r *http.Request) {
	var req models.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeServiceError(w, r, "*Handler.resolveValues", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	req.AppID = chi.URLParam(r, "appID")

	resp, err := h.services.ConfigService.ResolveValues(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.resolveValues", err)
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getFallback(w http.ResponseWriter, r *http.Request) {
	debug, err := boolQuery(r, "debug")
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getFallback", err)
		return
	}

	result, err := h.services.ConfigService.Fallback(r.Context(), chi.URLParam(r, "appID"), debug)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getFallback", err)
		return
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) refreshApp(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	n, err := h.services.ConfigService.Refresh(r.Context(), appID)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.refreshApp", err)
		return
	}
	utils.WriteJSON(w, refreshResponse{AppID: appID, Invalidated: n}, http.StatusOK)
}

func (h *Handler) refreshAll(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ConfigService.RefreshAll(r.Context()); err != nil {
		h.writeServiceError(w, r, "*Handler.refreshAll", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) cacheStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.ConfigService.CacheStats(r.Context()), http.StatusOK)
}

func (h *Handler) listSnapshots(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		h.writeServiceError(w, r, "*Handler.listSnapshots", err)
		return
	}

	snapshots, err := h.services.ConfigService.Snapshots(r.Context(), models.SnapshotQuery{
		AppID: chi.URLParam(r, "appID"),
		Limit: limit,
	})
	if err != nil {
		h.writeServiceError(w, r, "*Handler.listSnapshots", err)
		return
	}
	utils.WriteJSON(w, snapshots, http.StatusOK)
}

func (h *Handler) latestSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.ConfigService.LatestSnapshot(r.Context(), chi.URLParam(r, "appID"))
	if err != nil {
		h.writeServiceError(w, r, "*Handler.latestSnapshot", err)
		return
	}
	writeJSONWithETag(w, r, snapshot)
}

func boolQuery(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalidQuery, name, errors.Unwrap(err))
	}
	return v, nil
}

func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQuery, name, errors.Unwrap(err))
	}
	return v, nil
}
