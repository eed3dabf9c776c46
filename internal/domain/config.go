package domain

import (
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// Tools names the executables each pipeline step invokes. Names are resolved
// against the project's node_modules/.bin before falling back to PATH.
type Tools struct {
	Compiler       string
	Linter         string
	Mocha          string
	Ava            string
	Jest           string
	NYC            string
	Coveralls      string
	Bundler        string
	Transpiler     string
	JSDoc2MD       string
	JSDoc          string
	PackageManager string
}

// DefaultTools returns the stock toolchain.
func DefaultTools() Tools {
	return Tools{
		Compiler:       "tsc",
		Linter:         "tslint",
		Mocha:          "mocha",
		Ava:            "ava",
		Jest:           "jest",
		NYC:            "nyc",
		Coveralls:      "coveralls",
		Bundler:        "webpack",
		Transpiler:     "babel",
		JSDoc2MD:       "jsdoc2md",
		JSDoc:          "jsdoc",
		PackageManager: "npm",
	}
}

// DocsConfig controls the docs command.
type DocsConfig struct {
	Include     []string
	Exclude     []string
	JSDocConfig string
	Readme      string
}

// DefaultDocsConfig returns the built-in documentation source globs.
func DefaultDocsConfig() DocsConfig {
	return DocsConfig{
		Include: []string{"**/*.js"},
		Exclude: []string{
			"gulpfile.js",
			"**/*.test.js",
			"build/**",
			"coverage/**",
			"dist/**",
			"docs/**",
			"node_modules/**",
			"packages/**",
			"test/**",
			"**/*.config.js",
		},
		JSDocConfig: "./node_modules/util.pkgwrap/jsdoc.conf",
		Readme:      "./README.md",
	}
}

// Config is everything a dispatch needs besides the request. It is built
// once at process start.
type Config struct {
	WorkDir    m.Path // project root, where package.json lives
	BinDir     m.Path // local tool directory, usually node_modules/.bin
	ScratchDir m.Path // nyc temp directory shared between testing and reporting
	DocsDir    m.Path
	JSXTestDir m.Path // discovery root used with --jsxtest
	ReportPath m.Path // where the run report is written; empty disables it
	Tools      Tools
	Docs       DocsConfig
	Manifest   m.Manifest
}
