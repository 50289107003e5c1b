// Package engine resolves stack names to registered stack files and runs
// their stages and scripts.
//
// It is the core of ldot, responsible for:
//   - Picking the effective stack from an explicit name or the registry default
//   - Scanning registered stack files in order for the first valid match
//   - Finding the requested stage or script inside the matched document
//   - Handing the command list to the shell runner and returning its report
//
// Stack files are read again on every call. Nothing is cached between calls.
package engine
