package ofxconfig

import (
	"go.uber.org/zap"
)

// layer is one source a field can be resolved from.
type layer struct {
	source  string
	extract func() (string, error)
}

func fromValue(source, v string) layer {
	return layer{source: source, extract: func() (string, error) { return v, nil }}
}

func fromFunc(source string, f func() (string, error)) layer {
	return layer{source: source, extract: f}
}

// firstNonEmpty returns the first non-empty value produced by layers, or "".
// A failing layer is logged and skipped.
func firstNonEmpty(logger *zap.Logger, field string, layers ...layer) string {
	for _, l := range layers {
		v, err := l.extract()
		if err != nil {
			logger.Warn("cannot resolve field from source, falling back",
				zap.String("field", field),
				zap.String("source", l.source),
				zap.Error(err))

			continue
		}

		if v != "" {
			logger.Debug("resolved field",
				zap.String("field", field),
				zap.String("source", l.source),
				zap.String("value", v))

			return v
		}
	}

	logger.Debug("field left empty", zap.String("field", field))

	return ""
}
