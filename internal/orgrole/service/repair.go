package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/telemetry"
	"github.com/aussiebroadwan/orgrole/pkg/slogx"
)

// AdminRole is the value RestoreAdmin writes. It is the stored profile role,
// not a catalog key.
const AdminRole = "admin"

// RepairOutcome tags the result of a repair.
type RepairOutcome string

const (
	OutcomeRepaired RepairOutcome = "repaired"
	OutcomeNotFound RepairOutcome = "not_found"
)

// RepairResult is the tagged outcome of RestoreAdmin. Store failures are
// reported through the error return instead.
type RepairResult struct {
	Outcome RepairOutcome
	Email   string
}

// Message is the operator-facing summary of the result.
func (r RepairResult) Message() string {
	switch r.Outcome {
	case OutcomeRepaired:
		return "Restored admin role for " + r.Email
	default:
		return "User not found"
	}
}

type RepairService struct {
	Store store.Store
}

// RestoreAdmin sets the role of the first profile whose email equals email
// to AdminRole. The email is matched exactly as given. Calling it again for
// the same email is a no-op that still reports OutcomeRepaired.
//
// Authorization is the caller's responsibility.
func (s *RepairService) RestoreAdmin(ctx context.Context, email string) (RepairResult, error) {
	log := slogx.FromContext(ctx)

	result := RepairResult{Outcome: OutcomeNotFound, Email: email}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		profile, err := tx.Profiles().FindFirstByEmail(ctx, email)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Profiles().UpdateRole(ctx, profile.ID, AdminRole); err != nil {
			return err
		}

		result.Outcome = OutcomeRepaired
		return nil
	})
	if err != nil {
		telemetry.RoleRepairsTotal.WithLabelValues("store_unavailable").Inc()
		log.Error("admin role repair failed", "email", email, "err", err)
		return RepairResult{}, fmt.Errorf("%w: %w", ErrProfileStoreUnavailable, err)
	}

	telemetry.RoleRepairsTotal.WithLabelValues(string(result.Outcome)).Inc()
	log.Info("admin role repair", "email", email, "outcome", result.Outcome)
	return result, nil
}
