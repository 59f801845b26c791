package interop

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// SourceRootsEnvVar lists source roots to strip from reported file paths, separated by
// os.PathListSeparator. It is read once, the first time a path is normalized.
const SourceRootsEnvVar = "INTEROP_SOURCE_ROOTS"

var (
	sourceRoots     []string
	sourceRootsOnce sync.Once
	sourceRootsLock sync.RWMutex
)

// AddFailureAt reports a non-fatal failure to the bound registry. The file path is normalized
// with NormalizePath and the line is clamped with ClampLine. It returns normally; the current
// test keeps running.
func AddFailureAt(file string, line int, message string) {
	Bound().AddFailureAt(NormalizePath(file), ClampLine(line), message)
}

// SetSourceRoots replaces the list of path prefixes that NormalizePath strips. The environment
// variable is not consulted after this has been called.
func SetSourceRoots(roots ...string) {
	sourceRootsOnce.Do(func() {})
	sourceRootsLock.Lock()
	sourceRoots = cleanRoots(roots)
	sourceRootsLock.Unlock()
}

// AddSourceRoots adds to the list of path prefixes that NormalizePath strips.
func AddSourceRoots(roots ...string) {
	loadSourceRoots()
	sourceRootsLock.Lock()
	sourceRoots = cleanRoots(append(sourceRoots, roots...))
	sourceRootsLock.Unlock()
}

func loadSourceRoots() {
	sourceRootsOnce.Do(func() {
		if v := os.Getenv(SourceRootsEnvVar); v != "" {
			sourceRootsLock.Lock()
			sourceRoots = cleanRoots(filepath.SplitList(v))
			sourceRootsLock.Unlock()
		}
	})
}

// cleanRoots normalizes each root to end in "/" and sorts longest first, so that the most
// specific root wins.
func cleanRoots(roots []string) []string {
	var ret []string
	for _, r := range roots {
		if r == "" {
			continue
		}
		r = filepath.ToSlash(r)
		if !strings.HasSuffix(r, "/") {
			r += "/"
		}
		ret = append(ret, r)
	}
	sort.SliceStable(ret, func(i, j int) bool { return len(ret[i]) > len(ret[j]) })
	return ret
}

// NormalizePath rewrites a source path the way it should appear in reports: every "../"
// segment and a leading "./" are removed, then the first matching source root is stripped.
func NormalizePath(file string) string {
	loadSourceRoots()
	file = filepath.ToSlash(file)
	file = strings.ReplaceAll(file, "../", "")
	file = strings.TrimPrefix(file, "./")

	sourceRootsLock.RLock()
	defer sourceRootsLock.RUnlock()
	for _, root := range sourceRoots {
		if strings.HasPrefix(file, root) {
			return strings.TrimPrefix(file, root)
		}
	}
	return file
}
