package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/service"
	"github.com/aussiebroadwan/orgrole/pkg/authsdk"
	"github.com/aussiebroadwan/orgrole/pkg/slogx"
)

// writeServiceError maps service errors onto API errors.
func writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	log := slogx.FromContext(ctx)

	switch {
	case errors.Is(err, service.ErrInvalidRoleSet):
		log.Warn(msg, "err", err)
		authsdk.ErrInvalidRoleSet.WithDescription(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrProfileStoreUnavailable):
		log.Error(msg, "err", err)
		authsdk.ErrStoreUnavailable.WriteError(w)
	default:
		log.Error(msg, "err", err)
		authsdk.ErrServerError.WriteError(w)
	}
}
