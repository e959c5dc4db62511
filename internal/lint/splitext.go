package lint

import "strings"

// SplitExt splits a slash-separated path into root and extension so that
// root+ext == p. The extension starts at the last dot of the final path
// segment and includes it; leading dots of the segment never start an
// extension, so ".hidden" and "..x" have none.
func SplitExt(p string) (root, ext string) {
	sep := strings.LastIndexByte(p, '/')
	dot := strings.LastIndexByte(p, '.')
	if dot <= sep {
		return p, ""
	}
	// the segment must contain something other than dots before the last dot
	for i := sep + 1; i < dot; i++ {
		if p[i] != '.' {
			return p[:dot], p[dot:]
		}
	}
	return p, ""
}

// HasFailSuffix reports whether the path, minus its extension, ends with suffix
func HasFailSuffix(p, suffix string) bool {
	root, _ := SplitExt(p)
	return strings.HasSuffix(root, suffix)
}
