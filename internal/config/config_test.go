package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAndLoadMissingFile(t *testing.T) {
	assert := assert.New(t)

	cfg, err := FindAndLoad(t.TempDir())

	assert.NoError(err)
	assert.Equal(DefaultConfig(), cfg)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "loxide.toml")
	content := `
[repl]
prompt = ">> "

[debug]
print_ast = true
`
	assert.NoError(ioutil.WriteFile(path, []byte(content), os.ModePerm))

	cfg, err := Load(path)

	assert.NoError(err)
	assert.Equal(">> ", cfg.Repl.Prompt)
	// fields absent from the file keep their defaults
	assert.Equal(".loxide_history", cfg.Repl.History)
	assert.True(cfg.Debug.PrintAst)
}

func TestFindAndLoadWalksUp(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	assert.NoError(os.MkdirAll(nested, os.ModePerm))
	path := filepath.Join(root, "loxide.toml")
	assert.NoError(ioutil.WriteFile(path, []byte("[repl]\nprompt = \"? \"\n"), os.ModePerm))

	cfg, err := FindAndLoad(nested)

	assert.NoError(err)
	assert.Equal("? ", cfg.Repl.Prompt)
}

func TestLoadInvalidFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "loxide.toml")
	assert.NoError(ioutil.WriteFile(path, []byte("not toml ["), os.ModePerm))

	_, err := Load(path)

	assert.Error(err)
}
