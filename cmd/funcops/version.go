package main

// version is the CLI version string. Overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"
