// Package ui provides the terminal user interface for wrench.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program built around a single root Model and a
// screen enum. Each screen is one state of a menu-driven flow; there is no
// background work, so at most one API request is in flight at a time and
// the UI shows a busy line while it runs.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Root Model, screen enum, result-message handlers, and Run
//   - keyhandlers.go: Per-screen keyboard handling
//   - commands.go: tea.Cmd constructors wrapping API calls and their messages
//   - menu.go: Single-select menu and multi-select checklist widgets
//   - modal.go: Message-box overlay for results and errors
//   - views.go: Per-screen rendering
//   - keys.go: Key bindings
//   - theme.go: Color themes and derived lipgloss styles
//   - help.go: Help overlay
//
// # Screen Flow
//
// The program always starts at the key-entry screen. From there:
//
//	key entry ──> home ──┬──> station ──┬──> field edit (name, description)
//	                     │              └──> genre checklist
//	                     ├──> presenters ──> add-presenter wizard
//	                     │                    (name > schedule loop > roles)
//	                     └──> activity log
//
// Esc always moves one level up; inside the wizard it abandons the draft.
// Any key dismisses a modal and control returns to the screen the modal
// named when it was created.
//
// # Edit Semantics
//
//   - Scalar fields are pre-filled with the current backend value.
//     Cancelling, or resubmitting the pre-fill unchanged, makes no request.
//     An empty value is rejected locally.
//   - The genre checklist is pre-checked from the backend value. Confirming
//     with nothing checked is a deliberate clear and is sent as an empty
//     list.
//   - Schedule times are validated against HH:MM before leaving the prompt;
//     a malformed time re-prompts in place and never aborts the wizard.
//
// # Error Display
//
// Backend failures surface as error modals. When the failure is a
// *rexapi.StatusError the modal shows the status code and the verbatim
// response body, so the operator sees exactly what the service said. A
// request that runs without a captured key is a broken invocation and
// terminates the program instead of recovering.
//
// # Key Bindings
//
//   - j/k or arrows: Move
//   - enter: Confirm
//   - esc: Cancel / back
//   - space: Toggle a checklist entry
//   - ?: Help overlay
//   - T: Cycle theme
//   - Ctrl+C: Quit
//
// Global bindings are suspended while a text input owns the keyboard.
package ui
