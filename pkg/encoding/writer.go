package encoding

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how an Encoding is written.
type Format string

const (
	// FormatPartition writes ".inputs:", ".outputs:" and the formula on three lines.
	FormatPartition Format = "partition"
	// FormatArgs writes the quoted formula followed by the inputs, as the
	// synthesizer expects them on its command line.
	FormatArgs Format = "args"
	// FormatSections writes one labelled line per section.
	FormatSections Format = "sections"
	// FormatJSON writes the whole Encoding as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML writes the whole Encoding as YAML.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format, default first.
var Formats = []Format{FormatPartition, FormatArgs, FormatSections, FormatJSON, FormatYAML}

// ParseFormat resolves a format name. The empty string selects FormatPartition.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatPartition, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write serializes enc to w in the requested format.
func Write(w io.Writer, enc *Encoding, format Format) error {
	switch format {
	case FormatPartition, "":
		_, err := fmt.Fprintf(w, ".inputs: %s\n.outputs: %s\n%s\n",
			strings.Join(enc.Partition.Inputs, " "),
			strings.Join(enc.Partition.Outputs, " "),
			enc.Formula)
		return err
	case FormatArgs:
		_, err := fmt.Fprintf(w, "'%s' %s\n", enc.Formula, strings.Join(enc.Partition.Inputs, " "))
		return err
	case FormatSections:
		_, err := fmt.Fprintf(w, "init: %s\nagent: %s\nenvironment: %s\ngoal: %s\n",
			enc.Sections.Init, enc.Sections.Agent, enc.Sections.Environment, enc.Sections.Goal)
		return err
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		e.SetEscapeHTML(false)
		return e.Encode(enc)
	case FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(enc); err != nil {
			return err
		}
		return e.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Render is Write into a string.
func Render(enc *Encoding, format Format) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, enc, format); err != nil {
		return "", err
	}
	return sb.String(), nil
}
