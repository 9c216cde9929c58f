package stacktrace

import "strings"

// InternalPaths extracts this repository's stack frames from a raw stack
// trace, shortened to their path under internal/. It keeps panic logs
// readable without dumping the whole goroutine stack.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines))

	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i+1])
		if !strings.Contains(line, "/internal/") || !strings.Contains(line, ".go:") {
			continue
		}

		end := len(line)
		if idx := strings.Index(line, ".go:"); idx != -1 {
			if sp := strings.Index(line[idx:], " "); sp != -1 {
				end = idx + sp
			}
		}

		short := line[:end]
		if internalIdx := strings.Index(short, "/internal/"); internalIdx != -1 {
			paths = append(paths, short[internalIdx+1:])
		}
	}

	return paths
}
