// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the flows behind each command (parse,
// instantiate, check, spawn), decoupled from any specific entrypoint like a
// CLI.
package app
