// SPDX-License-Identifier: MIT

package datatype

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// tagNode is the participle grammar of a full descriptor tag.
// Examples: "scalar<bool>", "matrix<float64>", "vector<sparse<int32>>".
//
//nolint:govet // participle grammar tags are not standard struct tags
type tagNode struct {
	Container string       `parser:"@Ident \"<\""`
	Element   *elementNode `parser:"@@ \">\""`
}

// elementNode is the structure+primitive part of a tag.
//
//nolint:govet // participle grammar tags are not standard struct tags
type elementNode struct {
	Sparse *sparseNode `parser:"  @@"`
	Dense  *string     `parser:"| @Ident"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type sparseNode struct {
	Primitive string `parser:"\"sparse\" \"<\" @Ident \">\""`
}

// tagLexer accepts lowercase identifiers and angle brackets only; any other
// byte (including whitespace) makes the tag malformed.
var tagLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-z][a-z0-9]*`},
	{Name: "Punct", Pattern: `[<>]`},
})

var (
	tagParser     = participle.MustBuild[tagNode](participle.Lexer(tagLexer))
	elementParser = participle.MustBuild[elementNode](participle.Lexer(tagLexer))
)

// Parse converts a canonical tag back into a descriptor without length
// references. It is the inverse of Descriptor.String for every combination
// whose three tags are defined.
//
// Errors: ErrMalformedTag on a syntax error, ErrUnknownName when a name does
// not denote a defined container or primitive.
func Parse(tag string) (Descriptor, error) {
	node, err := tagParser.ParseString("", tag)
	if err != nil {
		return Descriptor{}, fmt.Errorf("Parse(%q): %w: %v", tag, ErrMalformedTag, err)
	}

	c, ok := ParseContainer(node.Container)
	if !ok {
		return Descriptor{}, fmt.Errorf("Parse(%q): container %q: %w", tag, node.Container, ErrUnknownName)
	}
	s, p, err := resolveElement(node.Element)
	if err != nil {
		return Descriptor{}, fmt.Errorf("Parse(%q): %w", tag, err)
	}

	return New(c, s, p), nil
}

// ParseStructure converts a structure+primitive tag ("float64",
// "sparse<int32>") back into its two axes. Inverse of StructureString for
// defined structures and primitives.
func ParseStructure(tag string) (Structure, Primitive, error) {
	node, err := elementParser.ParseString("", tag)
	if err != nil {
		return StructureUndefined, PrimitiveUndefined,
			fmt.Errorf("ParseStructure(%q): %w: %v", tag, ErrMalformedTag, err)
	}
	s, p, err := resolveElement(node)
	if err != nil {
		return StructureUndefined, PrimitiveUndefined, fmt.Errorf("ParseStructure(%q): %w", tag, err)
	}

	return s, p, nil
}

func resolveElement(node *elementNode) (Structure, Primitive, error) {
	s, name := Dense, ""
	switch {
	case node.Sparse != nil:
		s, name = Sparse, node.Sparse.Primitive
	case node.Dense != nil:
		name = *node.Dense
	default:
		return StructureUndefined, PrimitiveUndefined, ErrMalformedTag
	}

	p, ok := ParsePrimitive(name)
	if !ok {
		return StructureUndefined, PrimitiveUndefined, fmt.Errorf("primitive %q: %w", name, ErrUnknownName)
	}

	return s, p, nil
}
