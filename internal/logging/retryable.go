package logging

// Leveled adapts a Logger to retryablehttp's LeveledLogger interface so
// transport retries log through the same pipeline as everything else.
type Leveled struct {
	L *Logger
}

func (a Leveled) Error(msg string, keysAndValues ...any) {
	a.L.Error().Fields(keysAndValues).Msg(msg)
}

func (a Leveled) Warn(msg string, keysAndValues ...any) {
	a.L.Warn().Fields(keysAndValues).Msg(msg)
}

func (a Leveled) Info(msg string, keysAndValues ...any) {
	a.L.Info().Fields(keysAndValues).Msg(msg)
}

func (a Leveled) Debug(msg string, keysAndValues ...any) {
	a.L.Debug().Fields(keysAndValues).Msg(msg)
}
