package tifftools

import "go.uber.org/zap"

// logger is package-wide, like the registry it sits next to: built
// once and reused. Reader/Writer use it only for conditions that
// don't change the returned value (a dropped unknown-datatype tag, an
// NDPI offset fixup) — anything that changes
// behavior goes through the returned *Error and Info.Warnings instead.
var logger = func() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}()

// SetLogger replaces the package-wide logger, e.g. with
// zap.NewDevelopment().Sugar() for verbose local debugging, or
// zap.NewNop().Sugar() to silence it in tests.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}
