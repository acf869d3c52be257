package version

// Version is reported by the status command and the HTTP status endpoint.
const Version = "1.3.0"
