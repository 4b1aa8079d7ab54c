package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFmtStdin(t *testing.T) {
	var out bytes.Buffer
	err := runFmt(nil, strings.NewReader("<p>one</p><p>two</p>"), &out)
	require.NoError(t, err)
	assert.Equal(t, "<p>\n  one\n</p>\n<p>\n  two\n</p>\n", out.String())
}

func TestFmtIndent(t *testing.T) {
	var out bytes.Buffer
	err := runFmt([]string{"-indent", "\t"}, strings.NewReader("<div><p>x</p></div>"), &out)
	require.NoError(t, err)
	assert.Equal(t, "<div>\n\t<p>\n\t\tx\n\t</p>\n</div>\n", out.String())
}

func TestFmtXHTML(t *testing.T) {
	var out bytes.Buffer
	err := runFmt([]string{"-xhtml"}, strings.NewReader(`<form><br></form>`), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "<br/>")
}

func TestFmtWrite(t *testing.T) {
	path := writeFile(t, "page.html", "<p>one</p>")

	require.NoError(t, runFmt([]string{"-w", path}, nil, &bytes.Buffer{}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>\n  one\n</p>\n", string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, runFmt([]string{"-w", path}, nil, &bytes.Buffer{}))
	again, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime())
}

func TestFmtWriteNeedsFiles(t *testing.T) {
	assert.Error(t, runFmt([]string{"-w"}, strings.NewReader(""), &bytes.Buffer{}))
}

func TestMD(t *testing.T) {
	path := writeFile(t, "doc.md", "# Title\n\nHello *world*\n")

	var out bytes.Buffer
	require.NoError(t, runMD([]string{path}, &out))
	assert.Equal(t, `<h1 id="title">
  Title
</h1>
<p>
  Hello
  <em>
    world
  </em>
</p>
`, out.String())
}

func TestMDDocument(t *testing.T) {
	path := writeFile(t, "doc.md", "Hello\n")
	dst := filepath.Join(t.TempDir(), "doc.html")

	require.NoError(t, runMD([]string{"-doc", "-title", "Docs", "-o", dst, path}, &bytes.Buffer{}))
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "<!DOCTYPE html>\n"))
	assert.Contains(t, s, "Docs")
	assert.Contains(t, s, "Hello")
	assert.NotContains(t, s, "X-CSRF-TOKEN")
}

func TestMDNeedsOneFile(t *testing.T) {
	assert.Error(t, runMD(nil, &bytes.Buffer{}))
}

func TestSave(t *testing.T) {
	src := writeFile(t, "index.html", "<p>hi</p>")
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, runSave([]string{"-dir", dir, src}, &out))
	path := filepath.Join(dir, "index.html")
	assert.Equal(t, path+"\n", out.String())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>\n  hi\n</p>", strings.TrimSpace(string(b)))
}

func TestSaveMarkdown(t *testing.T) {
	src := writeFile(t, "notes.md", "*x*\n")
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, runSave([]string{"-dir", dir, "-name", "out", src}, &out))
	assert.Equal(t, filepath.Join(dir, "out.html")+"\n", out.String())
}

func TestTree(t *testing.T) {
	var out bytes.Buffer
	err := runTree(nil, strings.NewReader(`<div class="a"><p>hi</p><!--c--></div>`), &out)
	require.NoError(t, err)

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "(concat)"))
	assert.Contains(t, s, `<div class="a">`)
	assert.Contains(t, s, "<p>")
	assert.Contains(t, s, `"hi"`)
	assert.Contains(t, s, "<!--c-->")
}
