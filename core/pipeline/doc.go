// Package pipeline drives the streaming trim engine. A single control
// goroutine owns the arena and both transports; each buffer-full of
// scanned records is trimmed and compacted by a data-parallel worker
// group, then written out in scan order. It never imports the app, cli,
// or transport layers; keep it domain-only.
package pipeline
