package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"ican-wallet/wallet-base/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "data.json")
	assert.False(t, util.FileExist(name))

	require.NoError(t, ioutil.WriteFile(name, []byte(`[1,2]`), 0600))
	assert.True(t, util.FileExist(name))

	data, err := util.ReadAll(name)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(data))

	_, err = util.ReadAll(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestInitRotationLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "util-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, util.InitDefaultRotationLogger(filepath.Join(dir, "log"), "test.log"))
	assert.True(t, util.FileExist(filepath.Join(dir, "log")))

	require.NoError(t, util.InitConsoleLogger("debug"))
	assert.Error(t, util.InitConsoleLogger("loud"))
}
