package model

// Version is the envprof release, overridden at build time with -ldflags.
var Version = "0.4.0"
