// Package config manages ldot configuration and state persistence.
//
// It handles:
//   - The registry file (registered stack files and the default stack)
//   - Process settings read from LDOT_* environment variables
package config
