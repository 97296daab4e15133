package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winauto/internal/version"
)

func TestGetVersion(t *testing.T) {
	t.Parallel()

	v := version.GetVersion()
	assert.NotEmpty(t, v, "Version should not be empty")
	assert.Equal(t, version.Version, v)
}

func TestVersionFormat(t *testing.T) {
	t.Parallel()

	// Release builds must carry a semantic version
	v := version.GetVersion()
	if v != "dev" {
		assert.Regexp(t, `^v?\d+\.\d+\.\d+`, v, "Version should match semver pattern")
	}
}

func TestGetCommitAndDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, version.Commit, version.GetCommit())
	assert.Equal(t, version.Date, version.GetDate())
}

func TestGetFullVersionFormat(t *testing.T) {
	t.Parallel()

	full := version.GetFullVersion()
	expected := version.Version + " (commit: " + version.Commit + ", built: " + version.Date + ")"
	assert.Equal(t, expected, full)
	assert.Contains(t, full, "commit:")
	assert.Contains(t, full, "built:")
}
