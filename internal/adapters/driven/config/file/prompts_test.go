package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightline-dev/sightline-cli/internal/core/ports/driven"
)

func TestNewPromptStore_NoIOInConstructor(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "prompts")

	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	// Lazy init: the directory must not exist until the first Load.
	_, statErr := os.Stat(tmpDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPromptStore_Load_CreatesDefaults(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptGroundedAnswer)
	require.NoError(t, err)
	assert.Contains(t, prompt, "SNIPPETS_JSON")

	// First Load materialises the default file and the README.
	_, err = os.Stat(filepath.Join(tmpDir, driven.PromptGroundedAnswer+".txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(tmpDir, "README.md"))
	assert.NoError(t, err)
}

func TestPromptStore_Load_UserEditWins(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(tmpDir, 0700))
	custom := "Answer tersely.\n\nQUESTION: %s\n\nSNIPPETS_JSON: %s"
	path := filepath.Join(tmpDir, driven.PromptGroundedAnswer+".txt")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0600))

	prompt, err := store.Load(driven.PromptGroundedAnswer)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_Load_UnknownPrompt(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")
	assert.Error(t, err)
}

func TestPromptStore_Reload_PicksUpEdits(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	first, err := store.Load(driven.PromptGroundedAnswer)
	require.NoError(t, err)

	edited := "Edited.\n\nQUESTION: %s\n\nSNIPPETS_JSON: %s"
	path := filepath.Join(tmpDir, driven.PromptGroundedAnswer+".txt")
	require.NoError(t, os.WriteFile(path, []byte(edited), 0600))

	// Cached until Reload.
	cached, err := store.Load(driven.PromptGroundedAnswer)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	store.Reload()

	fresh, err := store.Load(driven.PromptGroundedAnswer)
	require.NoError(t, err)
	assert.Equal(t, edited, fresh)
}

func TestPromptStore_WatchAndClose(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Watch())
	assert.NoError(t, store.Close())
}
