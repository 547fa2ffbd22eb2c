package ospv

import (
	stderrors "errors"

	"github.com/wippyai/ospv/codec"
	"github.com/wippyai/ospv/convert"
	"github.com/wippyai/ospv/errors"
	"github.com/wippyai/ospv/fileio"
	"github.com/wippyai/ospv/schema"
)

// Convert decodes a SPIR-V module and builds its reflection artifact.
// source is recorded in the artifact and attached to any error.
func Convert(source string, data []byte) (*schema.Artifact, error) {
	return convert.Convert(source, data)
}

// ConvertFile reads the module at path and converts it. The path is the
// artifact's source file.
func ConvertFile(path string) (*schema.Artifact, error) {
	data, err := fileio.ReadBinaryFile(path)
	if err != nil {
		return nil, err
	}
	return convert.Convert(path, data)
}

// WriteArtifact renders a with opts and writes it to path.
func WriteArtifact(path string, a *schema.Artifact, opts codec.Options) error {
	text, err := codec.Render(a, opts)
	if err != nil {
		return err
	}
	return fileio.WriteTextFile(path, text)
}

// ReadArtifact loads an artifact written by WriteArtifact. The format is
// chosen from the file extension, and artifacts with dangling indices are
// rejected.
func ReadArtifact(path string) (*schema.Artifact, error) {
	text, err := fileio.ReadTextFile(path)
	if err != nil {
		return nil, err
	}
	a, err := codec.Parse(text, codec.FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			return nil, e.WithSource(path)
		}
		return nil, err
	}
	return a, nil
}
