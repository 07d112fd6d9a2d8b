package repositories

// ProgressWriter exports progressWriter for testing.
var ProgressWriter = progressWriter //nolint:gochecknoglobals // test export
