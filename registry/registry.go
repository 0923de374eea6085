// Package registry binds every protocol message variant to its topic
// template and payload schema. A Registry resolves incoming (topic, payload)
// pairs into typed messages and typed messages back into wire form.
package registry

import (
	"encoding/json"
	"fmt"

	"github.com/voicebus/hermes/proto"
	"github.com/voicebus/hermes/topic"
)

// UnknownTopicError reports a topic no registered template matches. Callers
// should log and ignore it.
type UnknownTopicError struct {
	Topic string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("no registered message matches topic %q", e.Topic)
}

// UnknownKindError reports an Encode call for a variant the registry does
// not know.
type UnknownKindError struct {
	Kind proto.Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("message kind %q is not registered", e.Kind)
}

// MalformedPayloadError reports a payload that is not a parseable JSON
// document.
type MalformedPayloadError struct {
	Topic string
	Err   error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload on topic %q: %v", e.Topic, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// SchemaViolationError reports a parseable payload that fails the variant's
// field schema. Field names the offending field when it can be determined.
type SchemaViolationError struct {
	Kind  proto.Kind
	Field string
	Err   error
}

func (e *SchemaViolationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("payload for %q violates schema at field %q: %v", e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("payload for %q violates schema: %v", e.Kind, e.Err)
}

func (e *SchemaViolationError) Unwrap() error { return e.Err }

// Entry declares one message variant: its topic template, payload field list
// and the glue between topic placeholders and struct fields. Entries are
// immutable after the registry is built.
type Entry struct {
	Kind     proto.Kind
	Template string
	// Binary marks variants whose payload is raw bytes rather than JSON.
	Binary bool
	// Fields lists the top-level payload fields; ignored for binary entries.
	Fields []Field
	// New returns a zero message of this variant, always as a pointer.
	New func() proto.Message
	// FromTopic copies matched placeholder values into path-carried fields.
	FromTopic func(msg proto.Message, values map[string]string)
	// TopicValues extracts placeholder values for rendering the topic.
	TopicValues func(msg proto.Message) map[string]string
}

type compiledEntry struct {
	Entry
	template *topic.Template
	schema   *payloadSchema
}

// Registry is the immutable message codec built from the closed variant set.
type Registry struct {
	byKind  map[proto.Kind]*compiledEntry
	ordered []*compiledEntry
}

// New compiles and validates a set of entries. It fails on malformed
// templates, duplicate kinds and ambiguous template pairs (two overlapping
// templates no concrete topic could tell apart). These are configuration
// errors and never surface at decode time.
func New(entries []Entry) (*Registry, error) {
	r := &Registry{byKind: make(map[proto.Kind]*compiledEntry, len(entries))}

	for _, e := range entries {
		if e.Kind == "" {
			return nil, fmt.Errorf("registry: entry for template %q has no kind", e.Template)
		}
		if _, dup := r.byKind[e.Kind]; dup {
			return nil, fmt.Errorf("registry: duplicate entry for kind %q", e.Kind)
		}
		if e.New == nil {
			return nil, fmt.Errorf("registry: entry %q has no constructor", e.Kind)
		}

		tmpl, err := topic.Compile(e.Template)
		if err != nil {
			return nil, fmt.Errorf("registry: entry %q: %w", e.Kind, err)
		}

		ce := &compiledEntry{Entry: e, template: tmpl}
		if !e.Binary {
			schema, err := compileFieldSchema(string(e.Kind), e.Fields)
			if err != nil {
				return nil, fmt.Errorf("registry: entry %q: %w", e.Kind, err)
			}
			ce.schema = schema
		}
		r.byKind[e.Kind] = ce
		r.ordered = append(r.ordered, ce)
	}

	for i, a := range r.ordered {
		for _, b := range r.ordered[i+1:] {
			if a.template.Overlaps(b.template) && topic.Compare(a.template, b.template) == 0 {
				return nil, fmt.Errorf("registry: ambiguous templates %q (%s) and %q (%s)",
					a.Template, a.Kind, b.Template, b.Kind)
			}
		}
	}
	return r, nil
}

// Default builds the registry over the full protocol vocabulary. It panics
// only on a programming error in the built-in entry table.
func Default() *Registry {
	r, err := New(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return r
}

// Kinds returns the registered variant tags in registration order.
func (r *Registry) Kinds() []proto.Kind {
	kinds := make([]proto.Kind, len(r.ordered))
	for i, e := range r.ordered {
		kinds[i] = e.Kind
	}
	return kinds
}

// Filters returns the wildcard subscription filters a client must subscribe
// to in order to receive every registered variant.
func (r *Registry) Filters() []string {
	seen := make(map[string]struct{}, len(r.ordered))
	filters := make([]string, 0, len(r.ordered))
	for _, e := range r.ordered {
		f := e.template.Filter()
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		filters = append(filters, f)
	}
	return filters
}

// Template returns the compiled topic template for a registered kind.
func (r *Registry) Template(kind proto.Kind) (*topic.Template, bool) {
	e, ok := r.byKind[kind]
	if !ok {
		return nil, false
	}
	return e.template, true
}

// Decode resolves an incoming topic and payload into a typed message. When
// several templates match the topic, the most specific wins; equal-specificity
// conflicts were rejected when the registry was built.
func (r *Registry) Decode(concreteTopic string, payload []byte) (proto.Message, error) {
	var best *compiledEntry
	var bestValues map[string]string

	for _, e := range r.ordered {
		values, ok := e.template.Match(concreteTopic)
		if !ok {
			continue
		}
		if best == nil || topic.Compare(e.template, best.template) < 0 {
			best, bestValues = e, values
		}
	}
	if best == nil {
		return nil, &UnknownTopicError{Topic: concreteTopic}
	}

	msg := best.New()
	if best.Binary {
		bin, ok := msg.(proto.BinaryMessage)
		if !ok {
			return nil, fmt.Errorf("registry: binary entry %q does not implement BinaryMessage", best.Kind)
		}
		bin.SetPayload(payload)
	} else {
		var doc any
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, &MalformedPayloadError{Topic: concreteTopic, Err: err}
		}
		if err := best.schema.validate(doc); err != nil {
			return nil, newSchemaViolation(best.Kind, err)
		}
		if err := json.Unmarshal(payload, msg); err != nil {
			// Mistyped nested structure the top-level schema cannot see.
			return nil, &SchemaViolationError{Kind: best.Kind, Err: err}
		}
	}

	if best.FromTopic != nil {
		best.FromTopic(msg, bestValues)
	}
	return msg, nil
}

// Encode turns a typed message into the exact topic string and payload bytes
// to publish. Messages must be passed as pointers, the way Decode returns
// them.
func (r *Registry) Encode(msg proto.Message) (string, []byte, error) {
	e, ok := r.byKind[msg.Kind()]
	if !ok {
		return "", nil, &UnknownKindError{Kind: msg.Kind()}
	}

	values := map[string]string{}
	if e.TopicValues != nil {
		values = e.TopicValues(msg)
	}
	concreteTopic, err := e.template.Render(values)
	if err != nil {
		return "", nil, err
	}

	if e.Binary {
		bin, ok := msg.(proto.BinaryMessage)
		if !ok {
			return "", nil, fmt.Errorf("registry: binary kind %q requires a pointer message", e.Kind)
		}
		return concreteTopic, bin.Payload(), nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", nil, fmt.Errorf("registry: encode %q: %w", e.Kind, err)
	}
	return concreteTopic, payload, nil
}
