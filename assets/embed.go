// Package assets embeds the sample files read by the errors demo so it
// behaves the same regardless of the working directory.
package assets

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed text.txt numbers.txt bad_number.txt
var FS embed.FS

// ReadText returns the contents of an embedded file.
// Missing files report an error wrapping fs.ErrNotExist.
func ReadText(name string) (string, error) {
	b, err := fs.ReadFile(FS, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Lines returns the non-empty, trimmed lines of an embedded file,
// skipping '#' comments.
func Lines(name string) ([]string, error) {
	s, err := ReadText(name)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}
