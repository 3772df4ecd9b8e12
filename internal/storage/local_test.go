package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	st, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "resumes/abc.pdf", bytes.NewBufferString("file-bytes"), "application/pdf"))

	exists, err := st.Exists(ctx, "resumes/abc.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := st.Get(ctx, "resumes/abc.pdf")
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "file-bytes", string(content))

	url, err := st.GetURL(ctx, "resumes/abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/abc.pdf", url)

	require.NoError(t, st.Delete(ctx, "resumes/abc.pdf"))
	exists, err = st.Exists(ctx, "resumes/abc.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting an absent file is not an error.
	assert.NoError(t, st.Delete(ctx, "resumes/abc.pdf"))
}
