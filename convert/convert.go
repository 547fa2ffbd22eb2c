package convert

import (
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/wippyai/ospv/errors"
	"github.com/wippyai/ospv/schema"
	"github.com/wippyai/ospv/spirv"
)

// Convert parses a SPIR-V module and builds its artifact. Source names the
// module in the artifact and in errors. Nothing is returned on failure.
func Convert(source string, data []byte) (*schema.Artifact, error) {
	c := NewConsumer()
	if err := spirv.Parse(data, c); err != nil {
		return nil, attribute(err, source, errors.PhaseParse)
	}

	a, err := c.Artifact(source)
	if err != nil {
		return nil, attribute(err, source, errors.PhaseConvert)
	}

	h := c.Header()
	Logger().Debug("converted module",
		zap.String("source", source),
		zap.Uint32("major", h.VersionMajor()),
		zap.Uint32("minor", h.VersionMinor()),
		zap.Int("types", len(a.Types)),
		zap.Int("decorations", len(a.Decoration)),
		zap.Int("entries", len(a.Entries)))
	return a, nil
}

func attribute(err error, source string, phase errors.Phase) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.WithSource(source)
	}
	return errors.Wrap(phase, errors.KindInvalidData, err, "").WithSource(source)
}
