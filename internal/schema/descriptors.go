package schema

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const pkg = "prefabgo"

// Names of the built-in block grammars.
const (
	Prototype         protoreflect.FullName = pkg + ".PrototypeDesc"
	Component         protoreflect.FullName = pkg + ".ComponentDesc"
	EmbeddedComponent protoreflect.FullName = pkg + ".EmbeddedComponentDesc"
	Property          protoreflect.FullName = pkg + ".PropertyDesc"
	Model             protoreflect.FullName = pkg + ".ModelDesc"
	Sprite            protoreflect.FullName = pkg + ".SpriteDesc"
	Material          protoreflect.FullName = pkg + ".MaterialDesc"
	Texture           protoreflect.FullName = pkg + ".Texture"
)

var (
	optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED

	tString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	tDouble  = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
	tMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	tEnum    = descriptorpb.FieldDescriptorProto_TYPE_ENUM
)

// fieldSpec is a compact field declaration used to build descriptors.
type fieldSpec struct {
	name     string
	typ      descriptorpb.FieldDescriptorProto_Type
	label    descriptorpb.FieldDescriptorProto_Label
	typeName string // short message or enum name for message/enum fields
	def      string // proto2 default value, if any
}

func str(name string) fieldSpec { return fieldSpec{name: name, typ: tString, label: optional} }

func dbl(name, def string) fieldSpec {
	return fieldSpec{name: name, typ: tDouble, label: optional, def: def}
}

func msg(name, typeName string) fieldSpec {
	return fieldSpec{name: name, typ: tMessage, label: optional, typeName: typeName}
}

func list(name, typeName string) fieldSpec {
	return fieldSpec{name: name, typ: tMessage, label: repeated, typeName: typeName}
}

func enum(name, typeName string) fieldSpec {
	return fieldSpec{name: name, typ: tEnum, label: optional, typeName: typeName}
}

func message(name string, fields ...fieldSpec) *descriptorpb.DescriptorProto {
	m := &descriptorpb.DescriptorProto{Name: proto.String(name)}
	for i, f := range fields {
		fd := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(f.name),
			Number: proto.Int32(int32(i + 1)),
			Type:   f.typ.Enum(),
			Label:  f.label.Enum(),
		}
		if f.typeName != "" {
			fd.TypeName = proto.String("." + pkg + "." + f.typeName)
		}
		if f.def != "" {
			fd.DefaultValue = proto.String(f.def)
		}
		m.Field = append(m.Field, fd)
	}
	return m
}

// propertyTypes lists the script property types in declaration order.
var propertyTypes = []string{
	"PROPERTY_TYPE_NUMBER",
	"PROPERTY_TYPE_HASH",
	"PROPERTY_TYPE_URL",
	"PROPERTY_TYPE_VECTOR3",
	"PROPERTY_TYPE_VECTOR4",
	"PROPERTY_TYPE_QUAT",
	"PROPERTY_TYPE_BOOLEAN",
}

func prototypeFile() *descriptorpb.FileDescriptorProto {
	propertyType := &descriptorpb.EnumDescriptorProto{Name: proto.String("PropertyType")}
	for i, name := range propertyTypes {
		propertyType.Value = append(propertyType.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(int32(i)),
		})
	}

	return &descriptorpb.FileDescriptorProto{
		Name:     proto.String("prefabgo/prototype.proto"),
		Package:  proto.String(pkg),
		Syntax:   proto.String("proto2"),
		EnumType: []*descriptorpb.EnumDescriptorProto{propertyType},
		MessageType: []*descriptorpb.DescriptorProto{
			message("Vector3", dbl("x", ""), dbl("y", ""), dbl("z", "")),
			message("Scale3", dbl("x", "1"), dbl("y", "1"), dbl("z", "1")),
			message("Quat", dbl("x", ""), dbl("y", ""), dbl("z", ""), dbl("w", "1")),
			message("PropertyDesc", str("id"), str("value"), enum("type", "PropertyType")),
			message("ComponentDesc",
				str("id"),
				str("component"),
				msg("position", "Vector3"),
				msg("rotation", "Quat"),
				list("properties", "PropertyDesc"),
				msg("scale", "Scale3"),
			),
			message("EmbeddedComponentDesc",
				str("id"),
				str("type"),
				str("data"),
				msg("position", "Vector3"),
				msg("rotation", "Quat"),
				msg("scale", "Scale3"),
			),
			message("PrototypeDesc",
				list("components", "ComponentDesc"),
				list("embedded_components", "EmbeddedComponentDesc"),
			),
			message("Texture", str("sampler"), str("texture")),
			message("MaterialDesc", str("name"), str("material"), list("textures", "Texture")),
			message("ModelDesc",
				str("mesh"),
				str("material"),
				list("textures", "Texture"),
				str("skeleton"),
				str("animations"),
				str("default_animation"),
				str("name"),
				list("materials", "MaterialDesc"),
			),
			message("SpriteDesc",
				str("tile_set"),
				str("default_animation"),
				str("material"),
				list("textures", "Texture"),
			),
		},
	}
}

// files holds the built-in grammars.
var files protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(prototypeFile(), new(protoregistry.Files))
	if err != nil {
		panic(fmt.Sprintf("schema: building prototype descriptors: %v", err))
	}
	files = fd
}

// Lookup returns the descriptor of a built-in block grammar.
func Lookup(name protoreflect.FullName) (protoreflect.MessageDescriptor, bool) {
	if name.Parent() != pkg {
		return nil, false
	}
	md := files.Messages().ByName(name.Name())
	return md, md != nil
}
