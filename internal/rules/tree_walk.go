package rules

import (
	"strconv"
	"strings"

	"yamlguard/internal/astyaml"
	"yamlguard/internal/token"
)

// walkMappings calls visit for every Mapping node reachable from stream,
// block or flow, at any depth.
func walkMappings(stream *astyaml.Stream, visit func(*astyaml.Mapping)) {
	walkNodes(stream, func(n astyaml.Node) {
		if m, ok := n.(*astyaml.Mapping); ok {
			visit(m)
		}
	})
}

// walkScalars calls visit for every Scalar node reachable from stream.
func walkScalars(stream *astyaml.Stream, visit func(*astyaml.Scalar)) {
	walkNodes(stream, func(n astyaml.Node) {
		if s, ok := n.(*astyaml.Scalar); ok {
			visit(s)
		}
	})
}

// walkScalarsWithRole calls visit for every Scalar node reachable from
// stream, flagging whether it occupies a mapping-key position.
func walkScalarsWithRole(stream *astyaml.Stream, visit func(s *astyaml.Scalar, isKey bool)) {
	if stream == nil {
		return
	}
	var walk func(n astyaml.Node, isKey bool)
	walk = func(n astyaml.Node, isKey bool) {
		if n == nil {
			return
		}
		switch v := n.(type) {
		case *astyaml.Scalar:
			visit(v, isKey)
		case *astyaml.Mapping:
			for _, e := range v.Entries {
				walk(e.Key, true)
				walk(e.Value, false)
			}
		case *astyaml.Sequence:
			for _, item := range v.Items {
				walk(item, false)
			}
		}
	}
	for _, doc := range stream.Documents {
		walk(doc.Root, false)
	}
}

// walkNodes performs a full pre-order traversal of every document's tree.
func walkNodes(stream *astyaml.Stream, visit func(astyaml.Node)) {
	if stream == nil {
		return
	}
	for _, doc := range stream.Documents {
		walkNode(doc.Root, visit)
	}
}

func walkNode(n astyaml.Node, visit func(astyaml.Node)) {
	if n == nil {
		return
	}
	visit(n)
	switch v := n.(type) {
	case *astyaml.Mapping:
		for _, e := range v.Entries {
			walkNode(e.Key, visit)
			walkNode(e.Value, visit)
		}
	case *astyaml.Sequence:
		for _, item := range v.Items {
			walkNode(item, visit)
		}
	}
}

// canonicalValue resolves a scalar's unquoted, unescaped string content.
func canonicalValue(s *astyaml.Scalar) string {
	switch s.Style {
	case token.SingleQuoted:
		inner := strings.TrimSuffix(strings.TrimPrefix(s.Value, "'"), "'")
		return strings.ReplaceAll(inner, "''", "'")
	case token.DoubleQuoted:
		if unquoted, err := strconv.Unquote(s.Value); err == nil {
			return unquoted
		}
		return strings.TrimSuffix(strings.TrimPrefix(s.Value, "\""), "\"")
	default:
		return s.Value
	}
}
