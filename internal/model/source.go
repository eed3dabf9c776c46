// Package model defines the data structures shared by the pkgwrap layers.
package model

import "strings"

// Path represents a file system path.
type Path string

// JSXFile pairs a discovered JSX source with the file the transpiler writes.
type JSXFile struct {
	Source Path
	Output Path
}

// OutputPathFor derives the transpiled companion of a JSX source by dropping
// the final character of the name ("foo/bar.jsx" -> "foo/bar.js").
func OutputPathFor(source Path) Path {
	if source == "" {
		return ""
	}

	return source[:len(source)-1]
}

// NewJSXFile builds a JSXFile for the given source path.
func NewJSXFile(source Path) JSXFile {
	return JSXFile{
		Source: source,
		Output: OutputPathFor(source),
	}
}

// CompileResult is the outcome of transpiling a single JSX file.
type CompileResult struct {
	File   JSXFile
	Output string // captured transpiler output
	Err    error
}

// OK reports whether the file compiled.
func (r CompileResult) OK() bool {
	return r.Err == nil
}

// Message renders the per-file status line.
func (r CompileResult) Message() string {
	if r.Err != nil {
		return "Error compiling file: " + string(r.File.Source) + " -> " + r.Err.Error()
	}

	return "compiled: " + string(r.File.Source)
}

// Invocation describes a single external tool call.
type Invocation struct {
	Name  string   // executable path or name resolved through PATH
	Args  []string // arguments passed verbatim, no shell expansion
	Dir   Path     // working directory, empty means the current one
	Stdin Path     // optional file fed to the tool's standard input
}

// String renders the invocation the way a user would type it.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, i.Name)

	for _, arg := range i.Args {
		if strings.ContainsAny(arg, " \t*{}") {
			arg = `"` + arg + `"`
		}

		parts = append(parts, arg)
	}

	line := strings.Join(parts, " ")
	if i.Stdin != "" {
		line += " < " + string(i.Stdin)
	}

	return line
}

// Discovery lists the files the build and docs commands would operate on.
type Discovery struct {
	JSX  []JSXFile
	Docs []Path // project-relative, slash separated
}
