package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 10
)
