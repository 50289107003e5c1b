// Package cli defines the ldot cobra commands. Commands parse arguments and
// flags, open a runtime context and hand off to the actions package.
package cli
