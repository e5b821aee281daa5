package exclude

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Matcher_SkipPaths(t *testing.T) {
	tmpDir := t.TempDir()
	selfPath := filepath.Join(tmpDir, "loader.yaml")

	matcher := NewMatcher(MatcherOptions{
		RootDir:   tmpDir,
		SkipPaths: []string{selfPath},
	})

	if !matcher.ShouldSkip(selfPath) {
		t.Error("expected explicit skip path to be excluded")
	}
	if matcher.ShouldSkip(filepath.Join(tmpDir, "other.yaml")) {
		t.Error("expected unrelated path to not be excluded")
	}
}

func Test_Matcher_Patterns_Basename(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{
		RootDir:  tmpDir,
		Patterns: []string{"*.draft.yaml"},
	})

	if !matcher.ShouldSkip(filepath.Join(tmpDir, "sub", "notes.draft.yaml")) {
		t.Error("expected pattern to exclude matching basename")
	}
	if matcher.ShouldSkip(filepath.Join(tmpDir, "sub", "notes.yaml")) {
		t.Error("expected non-matching file to not be excluded")
	}
}

func Test_Matcher_Patterns_DoubleStar(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{
		RootDir:  tmpDir,
		Patterns: []string{"internal/**"},
	})

	if !matcher.ShouldSkip(filepath.Join(tmpDir, "internal", "deep", "unit.yaml")) {
		t.Error("expected doublestar pattern to exclude nested path")
	}
	if matcher.ShouldSkip(filepath.Join(tmpDir, "public", "unit.yaml")) {
		t.Error("expected path outside pattern to not be excluded")
	}
}

func Test_Matcher_MalformedPatternIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{
		RootDir:  tmpDir,
		Patterns: []string{"[invalid"},
	})

	if matcher.ShouldSkip(filepath.Join(tmpDir, "unit.yaml")) {
		t.Error("expected malformed pattern to be ignored, not match everything")
	}
}

func Test_Matcher_IgnoreFile(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, IgnoreFileName), []byte("secret/\n*.generated.yaml\n"), 0644)

	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	if !matcher.ShouldSkip(filepath.Join(tmpDir, "models.generated.yaml")) {
		t.Error("expected ignore-file pattern to exclude *.generated.yaml")
	}
	if matcher.ShouldSkip(filepath.Join(tmpDir, "models.yaml")) {
		t.Error("expected normal file to not be excluded by ignore file")
	}
}

func Test_Matcher_IgnoreFileItselfSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, IgnoreFileName), []byte("secret/\n"), 0644)

	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	if !matcher.ShouldSkip(filepath.Join(tmpDir, IgnoreFileName)) {
		t.Error("expected the ignore file itself to be excluded")
	}
}
