package commands

// TeamScope exports teamScope for testing.
var TeamScope = teamScope //nolint:gochecknoglobals // test export
