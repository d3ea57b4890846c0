// Package app provides the orchestration layer for wrench.
//
// # Overview
//
// This package wires together configuration, logging, the session, the API
// client, and the UI. It is the composition root: every dependency is
// constructed here and handed to ui.Run.
//
// # Startup Sequence
//
//  1. Load configuration from ~/.config/wrench/config.toml
//  2. Open the JSON log file (falling back to a no-op logger on failure)
//  3. Load UI preferences (theme)
//  4. Create the empty key session
//  5. Create the activity feed and the signed API client
//  6. Start the TUI and block until the operator exits or context cancels
//
// No network call happens during startup; the backend is first contacted
// when the operator picks an action, after the key has been captured.
//
// # Error Handling
//
// Run returns an error only for startup failures and for the
// broken-invocation case where an authenticated flow ran without a key
// (session.ErrNoKey). A missing or unreadable log file is not fatal;
// logging degrades to a no-op and the program continues.
package app
