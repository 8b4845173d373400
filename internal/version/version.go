package version

// Version is the release tag baked into the binaries.
const Version = "0.5.0"
