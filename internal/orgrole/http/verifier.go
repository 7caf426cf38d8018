package http

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/telemetry"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/trust"
	"github.com/aussiebroadwan/orgrole/pkg/jwtx"
)

// instrumentVerifier counts every verification by result.
func instrumentVerifier(v *trust.Verifier) jwtx.Verifier {
	return jwtx.VerifierFunc(func(ctx context.Context, token string) (jwtx.Claims, error) {
		claims, err := v.Verify(ctx, token)
		telemetry.TokenVerificationsTotal.WithLabelValues(verificationResult(err)).Inc()
		return claims, err
	})
}

func verificationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, trust.ErrUntrustedIssuer):
		return "untrusted_issuer"
	case errors.Is(err, trust.ErrWrongAudience):
		return "wrong_audience"
	case errors.Is(err, trust.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, trust.ErrTokenExpired):
		return "expired"
	default:
		return "error"
	}
}
