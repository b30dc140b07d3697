package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted drops the raw template output of an artifact
// that failed gofmt into the schema's output directory, so the broken
// source can be inspected. Best-effort: the generation error is the one
// that matters, so failures here are not reported.
func writeDebugUnformatted(dir, filename string, content []byte) {
	if dir == "" || filename == "" {
		return
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return
	}

	// A .go name keeps editor highlighting; the .unformatted infix keeps
	// it out of the build and clear of the real artifact.
	name := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	_ = os.WriteFile(filepath.Join(dir, name), content, filePerm)
}
