// Package cli provides the interactive PhishGuard command-line client.
//
// An App owns one session.Gate and runs a read-eval-print loop over it.
// While anonymous the user can register and log in; once logged in the url,
// email and website commands send input to the detection models until
// logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command table.
package cli
