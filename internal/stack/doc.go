// Package stack defines the stack document model.
//
// It handles:
//   - Decoding stack files (stack -> projects -> stages, stack -> scripts)
//   - Structural validation of stack, project and script names
//   - The starter template written by `ldot generate`
package stack
