package bank

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a bank file encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected text|json|yaml)", s)
	}
}

// FormatFromPath picks the encoding from the file extension. Anything that
// is not .json, .yaml or .yml is read as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// LoadFile reads and parses a bank file. Read failures are reported as
// *IOError, content problems as *FormatError.
func LoadFile(path string, opts ParseOptions) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return Decode(data, FormatFromPath(path), opts)
}

// Decode parses data in the given format.
func Decode(data []byte, format Format, opts ParseOptions) (*Bank, error) {
	switch format {
	case FormatJSON:
		doc, err := decodeJSON(data)
		if err != nil {
			return nil, err
		}
		return doc.toBank(opts)
	case FormatYAML:
		doc, err := decodeYAML(data)
		if err != nil {
			return nil, err
		}
		return doc.toBank(opts)
	default:
		return Parse(string(data), opts)
	}
}

// Export writes b to w in the given format.
func Export(w io.Writer, b *Bank, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newDocument(b)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(b)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		text, err := encodeText(b)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	}
}

// encodeText renders b in the block format accepted by Parse.
func encodeText(b *Bank) (string, error) {
	blocks := make([]string, 0, b.Len())
	for i, c := range b.cards {
		if err := textSafe(c); err != nil {
			return "", &FormatError{Block: i + 1, Err: ErrNotRepresentable, Detail: err.Error()}
		}
		lines := []string{markerQuestion}
		lines = append(lines, c.Question.Description...)
		if c.Question.HasOptions() {
			lines = append(lines, markerOptions)
			for _, o := range c.Question.Options {
				lines = append(lines, o.Label.String()+"."+o.Text)
			}
		}
		lines = append(lines, markerAnswer)
		if c.Answer.Correct.IsSet() {
			lines = append(lines, c.Answer.Correct.String())
		}
		lines = append(lines, c.Answer.Reason...)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, blockDelimiter) + "\n", nil
}

// textSafe reports content that the text grammar would read back
// differently.
func textSafe(c Card) error {
	for _, l := range c.Question.Description {
		if l == "" || strings.Contains(l, "\n") || l == markerAnswer || l == markerOptions {
			return fmt.Errorf("description line %q", l)
		}
	}
	for _, o := range c.Question.Options {
		if strings.ContainsAny(o.Text, ".\n") {
			return fmt.Errorf("option %s text %q", o.Label, o.Text)
		}
	}
	for _, l := range c.Answer.Reason {
		if l == "" || strings.Contains(l, "\n") {
			return fmt.Errorf("reason line %q", l)
		}
	}
	return nil
}
