package bazel

import (
	"os"
	"regexp"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
)

// the name of an environment variable at runtime
const TEST_TMPDIR = "TEST_TMPDIR"

var nonWordRe = regexp.MustCompile(`\W+`)

// CleanupLabel replaces every run of non-word characters with an underscore,
// turning a maven artifact string into a valid target name.
func CleanupLabel(in string) string {
	return nonWordRe.ReplaceAllString(in, "_")
}

// NewTmpDir creates a new temporary directory under TEST_TMPDIR, which
// the caller may remove.  Outside of a bazel test it falls back to the
// rules_go helper.
func NewTmpDir(prefix string) (string, error) {
	if tmp, ok := os.LookupEnv(TEST_TMPDIR); ok {
		if err := os.MkdirAll(tmp, 0700); err != nil {
			return "", err
		}
		return os.MkdirTemp(tmp, prefix)
	}
	return bazel.NewTmpDir(prefix)
}
