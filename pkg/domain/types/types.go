package types

// Version is the application version, overridden at build time via ldflags
var Version = "v0.1.0"

// ServiceName is used in health responses and log attributes
const ServiceName = "fetchbench"
