package model

// Manifest is the subset of package.json pkgwrap understands.
type Manifest struct {
	Name               string            `json:"name,omitempty"`
	Version            string            `json:"version,omitempty"`
	Pkgwrap            PkgwrapSection    `json:"pkgwrap"`
	GlobalDependencies map[string]string `json:"globalDependencies,omitempty"`
}

// PkgwrapSection holds the arrays that extend the built-in defaults.
type PkgwrapSection struct {
	Cleanup []string `json:"cleanup,omitempty"`
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}
