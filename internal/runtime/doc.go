// Package runtime provides the execution context for ldot commands.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the registry store, the engine, the command runner and the logger.
package runtime
