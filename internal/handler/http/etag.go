package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-config-resolver/internal/utils"
)

// writeJSONWithETag writes data with a content-hash ETag and answers 304
// when the caller already holds that version.
func writeJSONWithETag(w http.ResponseWriter, r *http.Request, data any) {
	hash, err := utils.ContentHash(data)
	if err != nil {
		utils.WriteJSON(w, data, http.StatusOK)
		return
	}

	etag := `"` + hash + `"`
	w.Header().Set("ETag", etag)
	for _, candidate := range strings.Split(r.Header.Get("If-None-Match"), ",") {
		if strings.TrimSpace(candidate) == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	utils.WriteJSON(w, data, http.StatusOK)
}
