package writer

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/flexlog/flexlog/core"
)

// Zap returns a write strategy that delivers each line through zl as
// the message of a zap entry at the level mapped by ZapLevel. The line
// arrives at zl already serialized, so pair this with a plain console
// encoder (or a custom format strategy) to avoid double encoding.
func Zap(zl *zap.Logger) core.WriteFunc {
	return func(level, line string) (string, error) {
		zl.Log(ZapLevel(level), line)
		return line, nil
	}
}

// ZapLevel maps a level identifier to a zapcore.Level. TRACE maps to
// zap's Debug (zap has no trace level); FATAL and PANIC map to zap's
// Error so the sink never terminates the process on the logger's
// behalf. Unknown identifiers map to Info.
func ZapLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR", "FATAL", "PANIC":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
