package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
)

func TestLocal_SaveOpenDelete(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocal(dir)
	require.NoError(t, err)
	ctx := context.Background()

	key := NewKey(".JPG")
	assert.True(t, strings.HasPrefix(key, "bovinos/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	require.NoError(t, st.Save(ctx, key, strings.NewReader("jpeg-bytes"), 10, "image/jpeg"))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)

	rc, ct, err := st.Open(ctx, key)
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", ct)

	require.NoError(t, st.Delete(ctx, key))
	_, _, err = st.Open(ctx, key)
	assert.ErrorIs(t, err, ports.ErrObjectNotFound)
	assert.NoError(t, st.Delete(ctx, key), "borrar dos veces no falla")
}

func TestLocal_RechazaPathTraversal(t *testing.T) {
	st, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"../secreto.txt", "bovinos/../../etc/passwd", `..\win.ini`, ""} {
		assert.Error(t, st.Save(ctx, key, strings.NewReader("x"), 1, "text/plain"), key)
		_, _, err := st.Open(ctx, key)
		assert.ErrorIs(t, err, ports.ErrObjectNotFound, key)
	}
}

func TestNewKey_Unica(t *testing.T) {
	assert.NotEqual(t, NewKey("png"), NewKey("png"))
}
