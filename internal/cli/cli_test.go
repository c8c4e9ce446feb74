package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/sfc-extends/internal/pipeline"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var components = map[string]string{
	"Base.vue": `<template><div><extension-point name="body">default</extension-point></div></template>`,
	"pages/Home.vue": "<template extends=\"../Base.vue\">\n" +
		"<extensions><extension point=\"body\">home</extension></extensions>\n" +
		"</template>\n<script>\nexport default {}\n</script>",
	"pages/Broken.vue": `<template extends="./Missing.vue"></template>`,
}

func TestTransformCommand(t *testing.T) {
	dir := writeFiles(t, components)

	stdout, _, err := run(t, "transform", filepath.Join(dir, "pages", "Home.vue"))
	require.NoError(t, err)
	assert.Equal(t, "<template><div><template>home</template></div></template>\n<script>\nexport default {}\n</script>", stdout)
}

func TestTransformCommandPadLines(t *testing.T) {
	dir := writeFiles(t, components)

	stdout, _, err := run(t, "--pad-lines", "transform", filepath.Join(dir, "pages", "Home.vue"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "<script>\nexport default {}\n</script>")
}

func TestTransformCommandOutFile(t *testing.T) {
	dir := writeFiles(t, components)
	out := filepath.Join(dir, "out.vue")

	stdout, _, err := run(t, "transform", "-o", out, filepath.Join(dir, "pages", "Home.vue"))
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<template>home</template>")
}

func TestTransformCommandFailure(t *testing.T) {
	dir := writeFiles(t, components)

	_, _, err := run(t, "transform", filepath.Join(dir, "pages", "Broken.vue"))
	assert.ErrorIs(t, err, ErrTransformFailed)

	_, _, err = run(t, "--fs-root", filepath.Join(dir, "pages"), "transform", filepath.Join(dir, "pages", "Home.vue"))
	assert.ErrorIs(t, err, ErrTransformFailed)

	_, _, err = run(t, "transform")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransformFailed)

	_, _, err = run(t, "--max-depth=-1", "transform", filepath.Join(dir, "Base.vue"))
	assert.Error(t, err)
}

func TestBuildCommand(t *testing.T) {
	dir := writeFiles(t, components)
	out := filepath.Join(t.TempDir(), "dist")
	reportPath := filepath.Join(t.TempDir(), "report.json")

	_, stderr, err := run(t, "build", "--root", dir, "--out", out, "--report", reportPath, "--workers", "2")
	assert.ErrorIs(t, err, ErrTransformFailed)
	assert.Contains(t, stderr, "FAIL "+filepath.Join(dir, "pages", "Broken.vue"))

	code, err := os.ReadFile(filepath.Join(out, "pages", "Home.vue"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "<template>home</template>")

	reports, err := pipeline.ReadReport(reportPath)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 2, reports[0].Succeeded)
	assert.Equal(t, 1, reports[0].Failed)
}

func TestBuildCommandManifest(t *testing.T) {
	dir := writeFiles(t, components)
	manifest := filepath.Join(dir, "sfcx.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("workers: 2\ntargets:\n  - root: .\n    out: dist\n    exclude: [\"pages/Broken.vue\", \"dist/**\"]\n"), 0o644))

	_, _, err := run(t, "build", "--manifest", manifest)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "dist", "Base.vue"))
	assert.FileExists(t, filepath.Join(dir, "dist", "pages", "Home.vue"))
	assert.NoFileExists(t, filepath.Join(dir, "dist", "pages", "Broken.vue"))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sfcx dev")
}
