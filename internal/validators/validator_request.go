package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-config-resolver/models"
)

// Field name constants restrict Validate to a subset of checks.
const (
	FieldAppID = "app_id"
	FieldKeys  = "keys"
	FieldLimit = "limit"
)

const (
	// MaxResolveKeys bounds one value-resolution request.
	MaxResolveKeys = 100
	// MaxSnapshotLimit bounds one snapshot listing.
	MaxSnapshotLimit = 1000
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ResolveRequest:
		return v.validateResolveRequest(ctx, value, fields...)
	case *models.ResolveRequest:
		return v.validateResolveRequest(ctx, *value, fields...)

	case models.SnapshotQuery:
		return v.validateSnapshotQuery(ctx, value, fields...)
	case *models.SnapshotQuery:
		return v.validateSnapshotQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateResolveRequest(_ context.Context, req models.ResolveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAppID, FieldKeys}
	}

	for _, field := range fields {
		switch field {
		case FieldAppID:
			if err := ValidateAppID(req.AppID); err != nil {
				return err
			}
		case FieldKeys:
			if len(req.Keys) == 0 {
				return ErrEmptyKeys
			}
			if len(req.Keys) > MaxResolveKeys {
				return fmt.Errorf("%w: %d > %d", ErrTooManyKeys, len(req.Keys), MaxResolveKeys)
			}
			for i, k := range req.Keys {
				if strings.TrimSpace(k) == "" {
					return fmt.Errorf("%w: keys[%d]", ErrEmptyKey, i)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateSnapshotQuery(_ context.Context, q models.SnapshotQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAppID, FieldLimit}
	}

	for _, field := range fields {
		switch field {
		case FieldAppID:
			if err := ValidateAppID(q.AppID); err != nil {
				return err
			}
		case FieldLimit:
			if q.Limit < 0 || q.Limit > MaxSnapshotLimit {
				return fmt.Errorf("%w: %d", ErrInvalidLimit, q.Limit)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
