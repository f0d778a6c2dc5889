package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"pxrem/config"
	"pxrem/state"
)

// buildOutputPath returns constructed output file path/name. "src" is the
// source path relative to processed directory or archive (always including
// base file name). Unless NoDirs is requested relative directory structure is
// kept on the output. Every path segment is cleaned and if requested
// transliterated.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	parts := []string{dst}
	if !env.NoDirs {
		for _, segment := range splitPath(filepath.Dir(src)) {
			parts = append(parts, cleanPathSegment(segment, env))
		}
	}
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	parts = append(parts, cleanPathSegment(baseName, env)+env.Format.Ext())
	return filepath.Join(parts...)
}

func splitPath(path string) []string {
	path = filepath.ToSlash(filepath.Clean(path))
	if path == "." || path == "/" {
		return nil
	}
	segments := make([]string, 0, 8)
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment != "" && segment != "." {
			segments = append(segments, segment)
		}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg != nil && env.Cfg.Output.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
