// Package server holds the HTTP server configuration.
//
// The start command builds the fiber app; this package only defines the
// listen port, the API key and the economy provider name validated at startup
// by feature/economy.
package server
