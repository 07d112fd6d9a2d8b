package hotaisle

// BuildPath exports buildPath for testing.
var BuildPath = buildPath //nolint:gochecknoglobals // test export
