package reducer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"harmonia/internal/tokens"
)

// Marker tokens emitted for control-flow constructs. Which category each one
// lands in is entirely the vocabulary table's business; the reducer only
// decides which construct emits which literal token.
const (
	markerAssign    = "set"
	markerReturn    = "return"
	markerCondition = "check"
	markerLoop      = "iterate"
	markerHandler   = "handle"
	markerRaise     = "raise"
	markerDelete    = "delete"
	markerAssert    = "assert"

	// markerNeutral is emitted for statement kinds outside the documented
	// set. It is deliberately absent from the default vocabulary, so it is
	// ignored at embedding time: one unrecognized construct never aborts or
	// skews the rest of the analysis.
	markerNeutral = "noop"
)

// emitBody walks a function body and adds one token per recognized operation.
// Nested function definitions, lambdas and classes are excluded; they are
// reduced independently.
func emitBody(node *sitter.Node, source []byte, bag tokens.Bag) {
	switch node.Type() {
	case "function_definition", "lambda", "class_definition", "decorated_definition":
		return

	case "call":
		if verb := calleeVerb(node.ChildByFieldName("function"), source); verb != "" {
			bag.Add(verb)
		}

	case "assignment", "augmented_assignment":
		bag.Add(markerAssign)

	case "return_statement":
		bag.Add(markerReturn)

	case "if_statement", "elif_clause", "conditional_expression":
		bag.Add(markerCondition)

	case "for_statement", "while_statement":
		bag.Add(markerLoop)

	case "try_statement":
		bag.Add(markerHandler)

	case "raise_statement":
		bag.Add(markerRaise)

	case "delete_statement":
		bag.Add(markerDelete)

	case "assert_statement":
		bag.Add(markerAssert)

	case "block", "expression_statement", "pass_statement",
		"else_clause", "except_clause", "finally_clause", "comment":
		// Structural wrappers, nothing to emit.

	default:
		// Fallback for statement kinds outside the documented set
		// (with, match, global, ...). Local and non-propagating.
		if strings.HasSuffix(node.Type(), "_statement") {
			bag.Add(markerNeutral)
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		emitBody(node.NamedChild(i), source, bag)
	}
}

// calleeVerb extracts the leading sub-word of the callee's final identifier:
// database.delete_user(...) → "delete", fetchData() → "fetch".
func calleeVerb(fn *sitter.Node, source []byte) string {
	if fn == nil {
		return ""
	}
	switch fn.Type() {
	case "identifier":
		return tokens.LeadingWord(fn.Content(source))
	case "attribute":
		if attr := fn.ChildByFieldName("attribute"); attr != nil {
			return tokens.LeadingWord(attr.Content(source))
		}
	}
	return ""
}
