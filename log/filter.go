package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// WithFilterRules restricts output to entries matching rules,
// e.g. "debug:openf1 info:*" (see moul.io/zapfilter for the syntax).
func WithFilterRules(rules string) (Option, error) {
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, err
	}
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapfilter.NewFilteringCore(c, filter)
	}), nil
}
