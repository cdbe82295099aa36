package digest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestFileKnownDigests(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{"empty", nil, emptySHA256},
		{"hello world", []byte("hello world"), "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{"abc", []byte("abc"), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, dir, tt.name+".bin", tt.content)
			got, err := File(context.Background(), p, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, HexLen)
			assert.Equal(t, strings.ToLower(got), got)
		})
	}
}

func TestFileDeterministicAcrossRuns(t *testing.T) {
	p := writeFile(t, t.TempDir(), "large.bin", bytes.Repeat([]byte("0123456789"), 300_000))

	first, err := File(context.Background(), p, nil)
	require.NoError(t, err)
	second, err := File(context.Background(), p, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileTapSeesEveryByte(t *testing.T) {
	content := bytes.Repeat([]byte("A"), 2<<20+17)
	p := writeFile(t, t.TempDir(), "tap.bin", content)

	var tapped bytes.Buffer
	_, err := File(context.Background(), p, &tapped)
	require.NoError(t, err)
	assert.Equal(t, len(content), tapped.Len())
}

func TestFileMissing(t *testing.T) {
	_, err := File(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileErrorNamesPathOnce(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope")
	_, err := File(context.Background(), p, nil)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), p), err.Error())
}

func TestFileOnDirectoryFails(t *testing.T) {
	sum, err := File(context.Background(), t.TempDir(), nil)
	require.Error(t, err)
	assert.Empty(t, sum)
}

type failingReader struct{ after int }

func (f *failingReader) Read(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("device went away")
	}
	n := min(len(p), f.after)
	f.after -= n
	return n, nil
}

func TestSumMidStreamFailureReturnsNoDigest(t *testing.T) {
	sum, err := Sum(context.Background(), &failingReader{after: 4096}, nil)
	require.Error(t, err)
	assert.Empty(t, sum)
}

func TestSumMatchesFile(t *testing.T) {
	data := []byte("same bytes either way")
	p := writeFile(t, t.TempDir(), "same.bin", data)

	fromFile, err := File(context.Background(), p, nil)
	require.NoError(t, err)
	fromReader, err := Sum(context.Background(), io.NopCloser(bytes.NewReader(data)), nil)
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromReader)
}

// chunkReader records the largest read request. It also implements
// io.WriterTo the way *os.File does.
type chunkReader struct {
	r       io.Reader
	largest int
	wroteTo bool
}

func (c *chunkReader) Read(p []byte) (int, error) {
	c.largest = max(c.largest, len(p))
	return c.r.Read(p)
}

func (c *chunkReader) WriteTo(w io.Writer) (int64, error) {
	c.wroteTo = true
	return io.Copy(w, struct{ io.Reader }{c.r})
}

func TestSumReadsInFullBuffers(t *testing.T) {
	src := &chunkReader{r: bytes.NewReader(bytes.Repeat([]byte{9}, 3*bufSize))}
	_, err := Sum(context.Background(), src, nil)
	require.NoError(t, err)
	assert.False(t, src.wroteTo)
	assert.Equal(t, bufSize, src.largest)
}

func TestSumStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &chunkReader{r: bytes.NewReader([]byte("never read"))}
	sum, err := Sum(ctx, src, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sum)
	assert.Zero(t, src.largest)
}
