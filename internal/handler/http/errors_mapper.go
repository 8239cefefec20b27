package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-config-resolver/internal/app"
	"github.com/MKhiriev/go-config-resolver/internal/service"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},
	{app.ErrValidation, http.StatusBadRequest},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{app.ErrConfiguration, http.StatusNotFound},
	{app.ErrRemoteClient, http.StatusBadGateway},
	{app.ErrCache, http.StatusInternalServerError},
	{app.ErrServer, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
