// internal/version/version.go
package version

// Version is reported by --version and in the usage header.
const Version = "0.2.0"
