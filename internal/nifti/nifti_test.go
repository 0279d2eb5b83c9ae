package nifti

import (
	"compress/gzip"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvine/motiontidy/internal/errors"
)

// nifti1Header builds a minimal NIfTI-1 header with the given dim array.
func nifti1Header(order binary.ByteOrder, dim [8]int16) []byte {
	buf := make([]byte, nifti1HeaderSize)
	order.PutUint32(buf[0:], nifti1HeaderSize)
	for i, d := range dim {
		order.PutUint16(buf[nifti1DimOffset+2*i:], uint16(d))
	}
	copy(buf[nifti1MagicOffset:], "n+1\x00")
	return buf
}

// nifti2Header builds a minimal NIfTI-2 header with the given dim array.
func nifti2Header(order binary.ByteOrder, dim [8]int64) []byte {
	buf := make([]byte, nifti2HeaderSize)
	order.PutUint32(buf[0:], nifti2HeaderSize)
	copy(buf[nifti2MagicOffset:], "n+2\x00\r\n\x1a\n")
	for i, d := range dim {
		order.PutUint64(buf[nifti2DimOffset+8*i:], uint64(d))
	}
	return buf
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadHeaderNifti1(t *testing.T) {
	dim := [8]int16{4, 91, 109, 91, 900, 1, 1, 1}

	for _, tc := range []struct {
		name  string
		order binary.ByteOrder
	}{
		{"little endian", binary.LittleEndian},
		{"big endian", binary.BigEndian},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "bold.nii", nifti1Header(tc.order, dim))

			hdr, err := ReadHeader(path)
			require.NoError(t, err)
			assert.Equal(t, 1, hdr.Version)
			assert.Equal(t, tc.order, hdr.ByteOrder)
			assert.Equal(t, int64(900), hdr.Dim[4])

			frames, err := hdr.Frames()
			require.NoError(t, err)
			assert.Equal(t, 900, frames)
		})
	}
}

// CIFTI-2 dtseries files are NIfTI-2 containers with the spatial dims
// collapsed to 1 and the time axis in dim[5].
func TestReadHeaderCiftiDtseries(t *testing.T) {
	dim := [8]int64{6, 1, 1, 1, 1, 1149, 91282, 1}

	for _, tc := range []struct {
		name  string
		order binary.ByteOrder
	}{
		{"little endian", binary.LittleEndian},
		{"big endian", binary.BigEndian},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "timeseries.dtseries.nii", nifti2Header(tc.order, dim))

			frames, err := FrameCount(path)
			require.NoError(t, err)
			assert.Equal(t, 1149, frames)
		})
	}
}

func TestReadHeaderGzipped(t *testing.T) {
	dim := [8]int64{6, 1, 1, 1, 1, 383, 91282, 1}
	raw := nifti2Header(binary.LittleEndian, dim)

	path := filepath.Join(t.TempDir(), "timeseries.dtseries.nii.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	frames, err := FrameCount(path)
	require.NoError(t, err)
	assert.Equal(t, 383, frames)
}

func TestReadHeaderRejectsGarbage(t *testing.T) {
	path := writeTemp(t, "bogus.nii", []byte("this is not a nifti file at all"))

	_, err := ReadHeader(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a NIfTI file")
	assert.True(t, errors.IsCategory(err, errors.CategoryFileParsing))
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	buf := nifti1Header(binary.LittleEndian, [8]int16{4, 1, 1, 1, 10, 1, 1, 1})
	copy(buf[nifti1MagicOffset:], "xxx\x00")
	path := writeTemp(t, "badmagic.nii", buf)

	_, err := ReadHeader(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magic")
	assert.True(t, errors.IsCategory(err, errors.CategoryFileParsing))
}

func TestReadHeaderRejectsTruncated(t *testing.T) {
	buf := nifti1Header(binary.LittleEndian, [8]int16{4, 1, 1, 1, 10, 1, 1, 1})
	path := writeTemp(t, "short.nii", buf[:100])

	_, err := ReadHeader(path)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileParsing))
}

func TestReadHeaderRejectsBadDimCount(t *testing.T) {
	path := writeTemp(t, "baddim.nii",
		nifti1Header(binary.LittleEndian, [8]int16{9, 1, 1, 1, 10, 1, 1, 1}))

	_, err := ReadHeader(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dimension count")
	assert.True(t, errors.IsCategory(err, errors.CategoryFileParsing))
}

func TestReadHeaderMissingFile(t *testing.T) {
	_, err := ReadHeader(filepath.Join(t.TempDir(), "absent.nii"))
	require.Error(t, err)
}

func TestFramesNoTimeAxis(t *testing.T) {
	hdr := &Header{Version: 1, Dim: [8]int64{3, 91, 109, 91, 0, 0, 0, 0}}
	_, err := hdr.Frames()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no time axis")
}
