package cmd

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedEditor returns fixed content instead of launching an editor
type scriptedEditor struct {
	reply []byte
	seen  string
}

func (e *scriptedEditor) OpenFile(string) error             { return nil }
func (e *scriptedEditor) Command(string) (*exec.Cmd, error) { return nil, nil }
func (e *scriptedEditor) EditBytes(content []byte, _ string) ([]byte, error) {
	e.seen = string(content)
	if e.reply == nil {
		return content, nil
	}
	return e.reply, nil
}

func useEditor(t *testing.T, e *scriptedEditor) {
	t.Helper()
	orig := opener
	opener = e
	t.Cleanup(func() { opener = orig })
}

func TestEdit_WritesChangedValue(t *testing.T) {
	fake := setupCLI(t)
	ed := &scriptedEditor{reply: []byte(`"Install flowdoc"`)}
	useEditor(t, ed)

	out, _, err := run(t, "edit", "doc-1", "--path", "content.sections.0.text")
	require.NoError(t, err)
	assert.Equal(t, "\"Install the CLI\"\n", ed.seen)
	assert.Contains(t, out, "Updated doc-1")

	require.Len(t, fake.patches, 1)
	sections := fake.patches[0]["fieldData"].(map[string]any)["content"].(map[string]any)["sections"].([]any)
	assert.Equal(t, "Install flowdoc", sections[0].(map[string]any)["text"])
}

func TestEdit_UnchangedSendsNothing(t *testing.T) {
	fake := setupCLI(t)
	useEditor(t, &scriptedEditor{})

	out, _, err := run(t, "edit", "doc-1", "--path", "content")
	require.NoError(t, err)
	assert.Contains(t, out, "No changes")
	assert.Empty(t, fake.patches)
}

func TestEdit_ClearedFieldDataIsSent(t *testing.T) {
	fake := setupCLI(t)
	useEditor(t, &scriptedEditor{reply: []byte("{}\n")})

	_, _, err := run(t, "edit", "doc-1")
	require.NoError(t, err)

	require.Len(t, fake.patches, 1)
	assert.Equal(t, map[string]any{}, fake.patches[0]["fieldData"])
}

func TestEdit_InvalidJSON(t *testing.T) {
	setupCLI(t)
	useEditor(t, &scriptedEditor{reply: []byte("{oops")})

	_, _, err := run(t, "edit", "doc-1", "--path", "name")
	assert.ErrorContains(t, err, "not valid JSON")
}
