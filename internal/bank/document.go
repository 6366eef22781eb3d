package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is written by Export. Documents with the same major
// version are accepted.
const DocumentVersion = "v1.0.0"

//go:embed bank.schema.json
var schemaJSON []byte

const schemaURL = "schema://quizdeck/bank.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// document is the structured (JSON/YAML) form of a bank.
type document struct {
	Version string         `json:"version" yaml:"version"`
	Cards   []documentCard `json:"cards" yaml:"cards"`
}

type documentCard struct {
	Question []string         `json:"question" yaml:"question"`
	Options  []documentOption `json:"options,omitempty" yaml:"options,omitempty"`
	Correct  string           `json:"correct,omitempty" yaml:"correct,omitempty"`
	Reason   []string         `json:"reason" yaml:"reason"`
}

type documentOption struct {
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
}

// bankSchema compiles the embedded schema once.
func bankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// decodeJSON validates data against the bank schema and decodes it.
func decodeJSON(data []byte) (document, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return document{}, &FormatError{Err: ErrMalformedDocument, Detail: err.Error()}
	}
	sch, err := bankSchema()
	if err != nil {
		return document{}, err
	}
	if err := sch.Validate(parsed); err != nil {
		return document{}, &FormatError{Err: ErrMalformedDocument, Detail: err.Error()}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, &FormatError{Err: ErrMalformedDocument, Detail: err.Error()}
	}
	return doc, nil
}

// decodeYAML decodes a single YAML document, rejecting unknown keys.
func decodeYAML(data []byte) (document, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return document{}, &FormatError{Err: ErrEmptyBank}
		}
		return document{}, &FormatError{Err: ErrMalformedDocument, Detail: err.Error()}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		detail := "multiple documents are not supported"
		if err != nil {
			detail = err.Error()
		}
		return document{}, &FormatError{Err: ErrMalformedDocument, Detail: detail}
	}
	return doc, nil
}

// toBank checks the version and every card, then builds the bank.
func (d document) toBank(opts ParseOptions) (*Bank, error) {
	if !semver.IsValid(d.Version) {
		return nil, &FormatError{Err: ErrUnsupportedVersion, Detail: fmt.Sprintf("%q is not a semantic version", d.Version)}
	}
	if semver.Major(d.Version) != semver.Major(DocumentVersion) {
		return nil, &FormatError{
			Err:    ErrUnsupportedVersion,
			Detail: fmt.Sprintf("%s (supported: %s.x)", d.Version, semver.Major(DocumentVersion)),
		}
	}
	if len(d.Cards) == 0 {
		return nil, &FormatError{Err: ErrEmptyBank}
	}

	cards := make([]Card, 0, len(d.Cards))
	for i, dc := range d.Cards {
		card, err := dc.toCard()
		if err == nil {
			err = checkCard(card, opts.StrictReason)
		}
		if err != nil {
			return nil, &FormatError{Block: i + 1, Err: err}
		}
		cards = append(cards, card)
	}
	return &Bank{cards: cards}, nil
}

func (dc documentCard) toCard() (Card, error) {
	card := Card{
		Question: Question{Description: append([]string(nil), dc.Question...)},
		Answer:   Answer{Reason: append([]string(nil), dc.Reason...)},
	}
	if dc.Options != nil {
		card.Question.Options = make([]Option, 0, len(dc.Options))
		for _, o := range dc.Options {
			l, ok := ParseLabel(o.Label)
			if !ok {
				return Card{}, ErrInvalidOption
			}
			card.Question.Options = append(card.Question.Options, Option{Label: l, Text: o.Text})
		}
	}
	if dc.Correct != "" {
		l, ok := ParseLabel(dc.Correct)
		if !ok {
			return Card{}, ErrCorrectNotAmongOptions
		}
		card.Answer.Correct = l
	}
	return card, nil
}

// newDocument converts a bank to its structured form.
func newDocument(b *Bank) document {
	doc := document{Version: DocumentVersion, Cards: make([]documentCard, 0, b.Len())}
	for _, c := range b.cards {
		dc := documentCard{
			Question: append([]string{}, c.Question.Description...),
			Reason:   append([]string{}, c.Answer.Reason...),
			Correct:  c.Answer.Correct.String(),
		}
		for _, o := range c.Question.Options {
			dc.Options = append(dc.Options, documentOption{Label: o.Label.String(), Text: o.Text})
		}
		doc.Cards = append(doc.Cards, dc)
	}
	return doc
}
