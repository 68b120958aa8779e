// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package backendparser parses the backends.Ops interface, so generators can write code for every operation.
package backendparser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
)

// Method represents a single method from the backends.Ops interface
// with all its signature information as strings.
type Method struct {
	// Name is the method name
	Name string
	// Comments is the method documentation comment, one entry per line.
	Comments []string
	// Parameters of the method.
	Parameters []NameAndType
	// Outputs of the method.
	// Outputs names may contain all empty strings if they are not defined.
	Outputs []NameAndType
}

type NameAndType struct {
	Name, Type string
}

// OpsInterfaceName is the name of the parsed interface.
const OpsInterfaceName = "Ops"

// ParseOps returns all methods defined in the backends.Ops interface, in the order they are declared.
func ParseOps() ([]Method, error) {
	root, err := findModuleRoot()
	if err != nil {
		return nil, err
	}
	return ParseOpsFile(filepath.Join(root, "backends", "standard_ops.go"))
}

// ParseOpsFile returns all methods of the Ops interface declared in fileName.
func ParseOpsFile(fileName string) ([]Method, error) {
	fileSet := token.NewFileSet()
	file, err := parser.ParseFile(fileSet, fileName, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	fileContent := must.M1(os.ReadFile(fileName))

	// Extract the text from a node
	getText := func(node ast.Node) string {
		startOffset := fileSet.Position(node.Pos()).Offset
		endOffset := fileSet.Position(node.End()).Offset
		if endOffset > len(fileContent) {
			exceptions.Panicf("end offset out of bounds for file %s", fileName)
		}
		return string(fileContent[startOffset:endOffset])
	}

	var methods []Method
	var found bool
	ast.Inspect(file, func(n ast.Node) bool {
		typeSpec, ok := n.(*ast.TypeSpec)
		if !ok || typeSpec.Name.Name != OpsInterfaceName {
			return true
		}
		interfaceType, ok := typeSpec.Type.(*ast.InterfaceType)
		if !ok {
			return true
		}
		found = true
		for _, method := range interfaceType.Methods.List {
			funcType, ok := method.Type.(*ast.FuncType)
			if !ok {
				// Embedded interfaces are not used by Ops.
				continue
			}
			m := Method{
				Name: method.Names[0].Name,
			}
			if method.Doc != nil {
				m.Comments = make([]string, 0, len(method.Doc.List))
				for _, comment := range method.Doc.List {
					m.Comments = append(m.Comments, comment.Text)
				}
			}
			if funcType.Params != nil {
				for _, param := range funcType.Params.List {
					paramType := getText(param.Type)
					for _, name := range param.Names {
						m.Parameters = append(m.Parameters, NameAndType{Name: name.Name, Type: paramType})
					}
				}
			}
			if funcType.Results != nil {
				for _, result := range funcType.Results.List {
					resultType := getText(result.Type)
					if len(result.Names) == 0 {
						m.Outputs = append(m.Outputs, NameAndType{Type: resultType})
						continue
					}
					for _, name := range result.Names {
						m.Outputs = append(m.Outputs, NameAndType{Name: name.Name, Type: resultType})
					}
				}
			}
			methods = append(methods, m)
		}
		return false
	})
	if !found {
		return nil, fmt.Errorf("interface %s not found in %s", OpsInterfaceName, fileName)
	}
	return methods, nil
}

// findModuleRoot returns the absolute path to the module root directory
// by walking up the directory tree looking for the go.mod file.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (no go.mod file found)")
		}
		dir = parent
	}
}
