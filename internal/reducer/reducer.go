// Package reducer walks parsed Python syntax trees and reduces each function
// definition to a pair of token bags: one for the declared name (intent) and
// one for the operations in the body (execution).
package reducer

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"harmonia/internal/tokens"
)

// Function is one reduced function definition. Nested definitions get their
// own Function with a dotted qualified name; they never contribute tokens to
// the enclosing function's body bag.
type Function struct {
	Name      string // qualified: Outer.inner, Class.method
	File      string
	StartLine int
	EndLine   int
	NameBag   tokens.Bag
	BodyBag   tokens.Bag
}

// FileResult holds all functions reduced from one source file, in source
// order.
type FileResult struct {
	Path      string
	Functions []Function
}

// Reducer parses Python source with tree-sitter and extracts token bags.
type Reducer struct {
	parser *sitter.Parser
}

// NewReducer creates a reducer with the Python grammar loaded.
func NewReducer() *Reducer {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Reducer{parser: p}
}

// ReduceFile reads and reduces a single Python file.
func (r *Reducer) ReduceFile(ctx context.Context, path string) (*FileResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return r.ReduceSource(ctx, path, source)
}

// ReduceSource reduces Python source held in memory. The path is only used to
// label the result.
func (r *Reducer) ReduceSource(ctx context.Context, path string, source []byte) (*FileResult, error) {
	tree, err := r.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}
	defer tree.Close()

	result := &FileResult{Path: path}
	collectDefinitions(tree.RootNode(), source, "", path, result)
	return result, nil
}

// collectDefinitions finds every function definition under node, including
// methods and nested functions, qualifying names with their enclosing class
// or function.
func collectDefinitions(node *sitter.Node, source []byte, qualifier, path string, result *FileResult) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "function_definition":
			reduceFunction(child, source, qualifier, path, result)

		case "decorated_definition":
			if def := child.ChildByFieldName("definition"); def != nil {
				switch def.Type() {
				case "function_definition":
					reduceFunction(def, source, qualifier, path, result)
				case "class_definition":
					reduceClass(def, source, qualifier, path, result)
				}
			}

		case "class_definition":
			reduceClass(child, source, qualifier, path, result)

		default:
			// Definitions can hide inside conditionals, try blocks, etc.
			collectDefinitions(child, source, qualifier, path, result)
		}
	}
}

func reduceClass(node *sitter.Node, source []byte, qualifier, path string, result *FileResult) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := qualify(qualifier, nameNode.Content(source))
	if body := node.ChildByFieldName("body"); body != nil {
		collectDefinitions(body, source, name, path, result)
	}
}

func reduceFunction(node *sitter.Node, source []byte, qualifier, path string, result *FileResult) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := nameNode.Content(source)
	qualified := qualify(qualifier, name)

	fn := Function{
		Name:      qualified,
		File:      path,
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
		NameBag:   tokens.BagFromIdentifier(name),
		BodyBag:   tokens.Bag{},
	}

	body := node.ChildByFieldName("body")
	if body != nil {
		emitBody(body, source, fn.BodyBag)
	}
	result.Functions = append(result.Functions, fn)

	// Nested definitions become their own records.
	if body != nil {
		collectDefinitions(body, source, qualified, path, result)
	}
}

func qualify(qualifier, name string) string {
	if qualifier == "" {
		return name
	}
	return qualifier + "." + name
}
