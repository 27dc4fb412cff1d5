// Package monitor exposes runtime diagnostics for debugging.
package monitor

import (
	"log/slog"

	"github.com/google/gops/agent"
)

// StartAgent starts a gops agent so a running burnr process can be inspected
// with the gops CLI. The returned function shuts the agent down.
func StartAgent() (func(), error) {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		return nil, err
	}

	slog.Info("diagnostics agent listening")

	return agent.Close, nil
}
