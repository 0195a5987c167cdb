package schema

import (
	"fmt"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Decoder turns block-structured text into a Message of a given grammar.
// The zero value tolerates unknown fields; Strict rejects them.
type Decoder struct {
	Strict bool
}

// Decode parses text with the built-in grammar called name.
func (d Decoder) Decode(text []byte, name protoreflect.FullName) (Message, error) {
	md, ok := Lookup(name)
	if !ok {
		return Message{}, fmt.Errorf("no grammar named %q", name)
	}
	return d.DecodeAs(text, md)
}

// DecodeAs parses text with an arbitrary message descriptor, which lets
// embedded kinds defined outside this package bring their own grammar.
func (d Decoder) DecodeAs(text []byte, md protoreflect.MessageDescriptor) (Message, error) {
	m := dynamicpb.NewMessage(md)
	opts := prototext.UnmarshalOptions{DiscardUnknown: !d.Strict}
	if err := opts.Unmarshal(text, m); err != nil {
		return Message{}, err
	}
	return Message{m: m}, nil
}

// Message gives name-based read access to a decoded block. Asking for a
// field the grammar does not declare is a programming error and panics.
type Message struct {
	m protoreflect.Message
}

func (m Message) field(name string) protoreflect.FieldDescriptor {
	fd := m.m.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil {
		panic(fmt.Sprintf("schema: %s has no field %q", m.m.Descriptor().FullName(), name))
	}
	return fd
}

// Has reports whether the field was present in the text.
func (m Message) Has(name string) bool {
	return m.m.Has(m.field(name))
}

// Text returns a string field, or "" when absent.
func (m Message) Text(name string) string {
	return m.m.Get(m.field(name)).String()
}

// Float returns a floating point field, or its declared default when absent.
func (m Message) Float(name string) float64 {
	return m.m.Get(m.field(name)).Float()
}

// Enum returns the value name of an enum field, or its default when absent.
func (m Message) Enum(name string) string {
	fd := m.field(name)
	ev := fd.Enum().Values().ByNumber(m.m.Get(fd).Enum())
	if ev == nil {
		return ""
	}
	return string(ev.Name())
}

// Message returns a nested block. When absent, the result reads as the
// block's defaults.
func (m Message) Message(name string) Message {
	return Message{m: m.m.Get(m.field(name)).Message()}
}

// List returns the repeated blocks of a field in declaration order.
func (m Message) List(name string) []Message {
	l := m.m.Get(m.field(name)).List()
	out := make([]Message, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		out = append(out, Message{m: l.Get(i).Message()})
	}
	return out
}
