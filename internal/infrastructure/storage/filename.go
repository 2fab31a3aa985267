// Package storage persists uploaded post media and hands back the public
// reference clients use to fetch it.
package storage

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

var whitespace = regexp.MustCompile(`\s+`)

// FileName builds the stored name for an upload: upload time in unix
// milliseconds, a dash, then the original base name with whitespace runs
// replaced by underscores.
func FileName(uploadedAt time.Time, original string) string {
	return fmt.Sprintf("%d-%s", uploadedAt.UnixMilli(), sanitize(original))
}

func sanitize(original string) string {
	name := path.Base(strings.ReplaceAll(original, `\`, "/"))
	name = whitespace.ReplaceAllString(strings.TrimSpace(name), "_")
	switch name {
	case "", ".", "..", "/":
		return "upload"
	}
	return name
}
