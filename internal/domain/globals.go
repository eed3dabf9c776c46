package domain

import (
	"context"
	"sort"
)

// globals installs the manifest's globalDependencies, sorted by name.
func (s *session) globals(ctx context.Context) error {
	deps := s.cfg.Manifest.GlobalDependencies
	if len(deps) == 0 {
		s.ui.DisplayMessage(ctx, "No global dependencies to install")
		return nil
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		inv := s.tools.invocation(ctx, s.cfg.Tools.PackageManager, "install", "-g", name+"@"+deps[name])
		if err := s.run(ctx, inv); err != nil {
			return err
		}
	}

	return nil
}
