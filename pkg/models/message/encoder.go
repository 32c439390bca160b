package message

import (
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown transcript format")

// Encoder writes records to a stream, one document each.
type Encoder interface {
	Encode(v any) error
	Close() error
}

func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch format {
	case FormatJSON, "":
		return &jsonLines{w: w}, nil
	case FormatYAML:
		return &yamlDocuments{enc: yaml.NewEncoder(w)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

type jsonLines struct {
	w io.Writer
}

func (j *jsonLines) Encode(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	_, err = j.w.Write(append(data, '\n'))
	return err
}

func (j *jsonLines) Close() error { return nil }

type yamlDocuments struct {
	enc *yaml.Encoder
}

func (y *yamlDocuments) Encode(v any) error { return y.enc.Encode(v) }

func (y *yamlDocuments) Close() error { return y.enc.Close() }
