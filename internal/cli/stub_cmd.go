// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stub_cmd.go - Run the in-memory development backend.
//
// Command: stub
// Short:   Serve the /api/v1 endpoints from memory for local development
//
// Flags:
//   --addr ADDR     Listen address (default :8082)
//   --seed          Load sample categories and documents
//   --log           Log every request to stderr
//
// Examples:
//   aidesk stub --seed
//   aidesk stub --addr 127.0.0.1:9000 --log
//   aidesk --api http://localhost:8082/api/v1     (in another terminal)
package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeranaias/aidesk/internal/stubserver"
)

// DefaultStubAddr matches the port in the default api.base_url.
const DefaultStubAddr = ":8082"

// HandleStub serves the stub backend until interrupted.
func HandleStub(env *Env, args Args) error {
	p := args.Parser()
	addr := p.FlagOrDefault("addr", DefaultStubAddr)

	var opts []stubserver.Option
	if p.BoolFlag("seed") {
		opts = append(opts, stubserver.WithSeed())
	}
	if p.BoolFlag("log") {
		opts = append(opts, stubserver.WithRequestLogging())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env.info("%s %s", TitleStyle.Render("stub backend listening on"), ValueStyle.Render(addr+"/api/v1"))
	err := stubserver.New(opts...).ListenAndServe(ctx, addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return &CommandError{Message: "stub backend failed", Err: err}
	}
	return nil
}
