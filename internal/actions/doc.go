// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to an ldot command (load, execute, config list, ...)
// and orchestrates operations across the stack, config and engine packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Store, Engine, Splog, and other dependencies
//   - Actions are stateless; all state lives in the registry and stack files
//   - Actions handle user interaction through the tui package
package actions
