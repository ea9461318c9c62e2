package polyio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatText Format = "text"
	FormatSVG  Format = "svg"
	FormatYAML Format = "yaml"
)

var Formats = []string{string(FormatText), string(FormatSVG), string(FormatYAML)}

// DetectFormat guesses from the file extension, defaulting to text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatText
}

// ReadFile loads a scene from path. Text and SVG files give a scene with
// polygons only. An empty format is detected from the extension, and "-"
// reads standard input.
func ReadFile(path string, format Format) (*Scene, error) {
	if format == "" {
		format = DetectFormat(path)
	}

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	switch format {
	case FormatYAML:
		scene, err := ReadScene(in)
		return scene, errors.Wrapf(err, "reading %s", path)
	case FormatSVG:
		polygons, err := ReadSVG(in)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		return NewScene(polygons), nil
	case FormatText:
		polygons, err := ReadText(in)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		return NewScene(polygons), nil
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// WriteFile writes the scene as YAML.
func WriteFile(path string, scene *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := WriteScene(f, scene); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
