package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: exprgen <output directory>")
		os.Exit(64)
	}

	outputDir, err := filepath.Abs(os.Args[1])
	if err != nil {
		panic(err)
	}
	// we do it the scripting way, instead of having types support from Go stdlib
	expressionTypes := []string{
		"Binary: Op string, Lhs Expr, Rhs Expr",
		// Const holds the name of a named constant, its value is only looked up
		// when the tree is evaluated.
		"Literal: Val float64, Const string",
		// Unary covers function application as well as unary '+' and '-'.
		"Unary: Fn string, Operand Expr",
		"Variable: Name string",
	}

	defineAst(outputDir, "Expr", expressionTypes)
}

func defineAst(outputDir string, baseName string, types []string) {
	var buf bytes.Buffer

	packageName := filepath.Base(outputDir)
	fmt.Fprintf(&buf, "// Code generated by exprgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Interface for Expr in AST
	fmt.Fprintf(&buf, "// %s is a node of an immutable expression tree.\n", baseName)
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err)
	}

	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	if err := os.WriteFile(fpath, src, 0644); err != nil {
		panic(err)
	}
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		fieldList,
		typeName, baseName,
	)
	var fieldNames []string
	for _, f := range fields {
		fieldName := strings.TrimSpace(strings.Split(f, " ")[0])
		fieldNames = append(fieldNames, fieldName)
	}
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")
}
