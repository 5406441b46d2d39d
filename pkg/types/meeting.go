// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"

	"go.yaml.in/yaml/v3"
)

// MeetingRecord is the structured form of one meeting log: flat metadata from
// the "Meeting Summary" section and the question/answer pairs from the
// "Questions and Responses" section, in file order.
type MeetingRecord struct {
	// Info holds meeting metadata keyed by lower-cased field name.
	Info MeetingInfo `json:"meeting_info" yaml:"meeting_info"`

	// QAPairs lists questions with their (possibly absent) answers.
	QAPairs []QAPair `json:"qa_pairs" yaml:"qa_pairs"`
}

// QAPair is one question and the answer most recently given to it.
type QAPair struct {
	Question string `json:"question" yaml:"question"`

	// Answer is nil when no answer line followed the question.
	Answer *string `json:"answer,omitempty" yaml:"answer,omitempty"`
}

// HasAnswer reports whether an answer line was attached to the question.
func (p QAPair) HasAnswer() bool {
	return p.Answer != nil
}

// AnswerText returns the answer, or "" when absent.
func (p QAPair) AnswerText() string {
	if p.Answer == nil {
		return ""
	}
	return *p.Answer
}

// MeetingInfo maps field names to values. Keys keep the position of their
// first insertion; re-setting a key replaces its value in place. The zero
// value is ready to use.
type MeetingInfo struct {
	keys   []string
	values map[string]string
}

// Set stores value under key.
func (m *MeetingInfo) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m MeetingInfo) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of fields.
func (m MeetingInfo) Len() int {
	return len(m.keys)
}

// Keys returns field names in insertion order.
func (m MeetingInfo) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Map returns a copy of the fields as a plain map.
func (m MeetingInfo) Map() map[string]string {
	out := make(map[string]string, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.values[k]
	}
	return out
}

// MarshalJSON encodes the fields as a JSON object in insertion order.
func (m MeetingInfo) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object. Key order follows the document.
func (m *MeetingInfo) UnmarshalJSON(data []byte) error {
	*m = MeetingInfo{}
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		m.Set(key, value)
	}
	_, err := dec.Token()
	return err
}

// MarshalYAML encodes the fields as a YAML mapping in insertion order.
func (m MeetingInfo) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.values[k]},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping. Key order follows the document.
func (m *MeetingInfo) UnmarshalYAML(node *yaml.Node) error {
	*m = MeetingInfo{}
	if node.Kind != yaml.MappingNode {
		var empty map[string]string
		return node.Decode(&empty)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		m.Set(node.Content[i].Value, node.Content[i+1].Value)
	}
	return nil
}
