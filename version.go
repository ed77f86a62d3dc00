package ipauk

// Version is reported by the command-line tool and the health endpoint.
// Release builds override it with -ldflags "-X github.com/ukrphon/ipauk.Version=...".
var Version = "0.1.0"
