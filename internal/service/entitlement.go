// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package service

import (
	"context"

	"github.com/aturgenev/identity-store/models"
)

// EntitlementService is the client-visible contract of the host's
// license-entitlement engine, exposed through the same privileged boundary as
// authentication. The identity store neither implements nor calls it and
// stays fully functional when the host provides no implementation; the
// interface lives here so hosts wire both boundaries against one vocabulary.
type EntitlementService interface {
	// ValidateOnStartup checks the entitlement state when the application
	// launches.
	ValidateOnStartup(ctx context.Context) models.EntitlementStatus

	// Activate redeems a license key against the given machine-binding
	// data.
	Activate(ctx context.Context, key string, bindingData string) models.EntitlementStatus

	// Deactivate releases the current activation.
	Deactivate(ctx context.Context) models.EntitlementStatus

	// GetStatus reports the current entitlement state without mutating it.
	GetStatus(ctx context.Context) models.EntitlementStatus

	// GetLogs returns the engine's activation/validation event history.
	GetLogs(ctx context.Context) []models.EntitlementLogEntry
}
