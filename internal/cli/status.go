// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend health check.
//
// Command: health
// Aliases: status
//
// Examples:
//   aidesk health                  One-line health summary
//   aidesk health --json           Health in JSON format for monitoring
//   aidesk --api http://h:8082/api/v1 health
//
// Output Fields:
//   Backend    Base URL checked
//   Status     Status reported by GET /health
//   Service    Service name reported by the backend
//   Latency    Round trip of the health request
//
// Exit code is 0 when the backend answers "ok", otherwise non-zero.
package cli

import (
	"time"

	"github.com/jeranaias/aidesk/internal/locale"
)

// HandleHealth checks the backend's /health endpoint.
func HandleHealth(env *Env, args Args) error {
	ctx, cancel := env.ctx()
	defer cancel()

	start := time.Now()
	h, err := env.Client.Health(ctx)
	latency := time.Since(start)
	if err != nil {
		return failed(env.Printer.T(locale.BackendDown), err)
	}
	if !h.OK() {
		return &CommandError{Message: env.Printer.T(locale.BackendDown) + ": status " + h.Status}
	}

	data := HealthData{
		BaseURL:   env.Client.BaseURL(),
		Status:    h.Status,
		Service:   h.Service,
		LatencyMS: latency.Milliseconds(),
	}
	if env.JSON {
		return env.emit("health", data)
	}
	if env.Quiet {
		return nil
	}

	env.printf("%s %s\n", SuccessStyle.Render("✓"), env.Printer.T(locale.HealthOK, data.Service, formatDuration(latency)))
	env.printf("%s\n", RenderField("Backend", data.BaseURL))
	env.printf("%s\n", RenderField("Status", data.Status))
	env.printf("%s\n", RenderField("Latency", formatDuration(latency)))
	return nil
}
