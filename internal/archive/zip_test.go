package archive

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackSingleFileRoundTrip(t *testing.T) {
	packed := PackSingleFile("index.html", []byte("hello"))

	reader, err := zip.NewReader(bytes.NewReader(packed), int64(len(packed)))
	require.NoError(t, err)
	require.Len(t, reader.File, 1)

	f := reader.File[0]
	assert.Equal(t, "index.html", f.Name)
	assert.Equal(t, uint16(zip.Store), f.Method)
	assert.Equal(t, uint32(0x3610a686), f.CRC32)

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
}

func TestPackSingleFileEmptyContent(t *testing.T) {
	packed := PackSingleFile("empty.txt", nil)

	reader, err := zip.NewReader(bytes.NewReader(packed), int64(len(packed)))
	require.NoError(t, err)
	require.Len(t, reader.File, 1)
	assert.Equal(t, uint64(0), reader.File[0].UncompressedSize64)
}

func TestPackSingleFileLayout(t *testing.T) {
	content := []byte("<html></html>")
	at := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
	packed := packSingleFileAt("index.html", content, at)

	// Local file header at offset 0.
	assert.Equal(t, uint32(0x04034b50), binary.LittleEndian.Uint32(packed[0:]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(packed[8:]), "store method")
	assert.Equal(t, uint32(len(content)), binary.LittleEndian.Uint32(packed[18:]))
	assert.Equal(t, uint32(len(content)), binary.LittleEndian.Uint32(packed[22:]))

	// DOS timestamp fields.
	dosTime := binary.LittleEndian.Uint16(packed[10:])
	dosDate := binary.LittleEndian.Uint16(packed[12:])
	assert.Equal(t, uint16(15<<11|9<<5|26/2), dosTime)
	assert.Equal(t, uint16((2025-1980)<<9|3<<5|14), dosDate)

	// Content follows the header directly; central directory follows the
	// content and references offset 0.
	centralOffset := 30 + len("index.html") + len(content)
	assert.Equal(t, uint32(0x02014b50), binary.LittleEndian.Uint32(packed[centralOffset:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(packed[centralOffset+42:]))

	// End-of-central-directory record closes the archive with entry count 1.
	endOffset := len(packed) - 22
	assert.Equal(t, uint32(0x06054b50), binary.LittleEndian.Uint32(packed[endOffset:]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(packed[endOffset+10:]))
	assert.Equal(t, uint32(centralOffset), binary.LittleEndian.Uint32(packed[endOffset+16:]))
}
