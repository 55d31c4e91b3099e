// Package console provides colored terminal output and tables for the
// CLI commands.
package console
