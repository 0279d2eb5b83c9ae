// Package nifti reads NIfTI-1 and NIfTI-2 file headers to determine the
// number of frames in a timeseries. Only the header is parsed; voxel or
// grayordinate data is never loaded.
package nifti

import (
	"compress/gzip"
	"encoding/binary"
	"io"
	"os"

	"github.com/tkarvine/motiontidy/internal/errors"
)

const (
	nifti1HeaderSize = 348
	nifti2HeaderSize = 540

	nifti1DimOffset = 40 // dim[8] as int16
	nifti2DimOffset = 16 // dim[8] as int64

	nifti1MagicOffset = 344
	nifti2MagicOffset = 4
)

// Header holds the fields of a NIfTI header needed for frame counting.
type Header struct {
	Version   int              // 1 or 2
	ByteOrder binary.ByteOrder // byte order the file was written in
	Dim       [8]int64         // dim[0] is the number of dimensions
}

// ReadHeader opens the file at path and parses its NIfTI header.
// Plain and gzip-compressed files are both accepted.
func ReadHeader(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileIO).
			Context("operation", "open-timeseries").
			FileContext(path).
			Build()
	}
	defer f.Close()

	r, err := maybeGzip(f)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileParsing).
			Context("operation", "decompress-timeseries").
			FileContext(path).
			Build()
	}

	hdr, err := parseHeader(r)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileParsing).
			FileContext(path).
			Build()
	}
	return hdr, nil
}

// FrameCount returns the number of timeseries frames in the file at path.
func FrameCount(path string) (int, error) {
	hdr, err := ReadHeader(path)
	if err != nil {
		return 0, err
	}
	return hdr.Frames()
}

// Frames returns the length of the time axis. For a standard 4D image the
// time axis is dim[4]. CIFTI-2 dtseries files collapse the spatial dims to 1
// and store the time axis in dim[5] with grayordinates in dim[6].
func (h *Header) Frames() (int, error) {
	ndim := h.Dim[0]

	if ndim >= 5 && h.Dim[4] <= 1 && h.Dim[5] > 1 {
		return int(h.Dim[5]), nil
	}
	if ndim >= 4 && h.Dim[4] >= 1 {
		return int(h.Dim[4]), nil
	}

	return 0, errors.Newf("no time axis in header: ndim=%d dim4=%d dim5=%d", ndim, h.Dim[4], h.Dim[5]).
		Category(errors.CategoryFileParsing).
		Build()
}

// maybeGzip wraps r in a gzip reader when the stream carries the gzip magic bytes.
func maybeGzip(f *os.File) (io.Reader, error) {
	magic := make([]byte, 2)
	n, err := f.Read(magic)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if n == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return gzip.NewReader(f)
	}
	return f, nil
}

func parseHeader(r io.Reader) (*Header, error) {
	sizeBytes := make([]byte, 4)
	if _, err := io.ReadFull(r, sizeBytes); err != nil {
		return nil, errors.Newf("failed to read header size: %w", err).
			Category(errors.CategoryFileParsing).
			Build()
	}

	// sizeof_hdr identifies both the format version and the byte order
	var version int
	var order binary.ByteOrder
	switch binary.LittleEndian.Uint32(sizeBytes) {
	case nifti1HeaderSize:
		version, order = 1, binary.LittleEndian
	case nifti2HeaderSize:
		version, order = 2, binary.LittleEndian
	default:
		switch binary.BigEndian.Uint32(sizeBytes) {
		case nifti1HeaderSize:
			version, order = 1, binary.BigEndian
		case nifti2HeaderSize:
			version, order = 2, binary.BigEndian
		default:
			return nil, errors.Newf("not a NIfTI file: unrecognized header size").
				Category(errors.CategoryFileParsing).
				Build()
		}
	}

	headerSize := nifti1HeaderSize
	if version == 2 {
		headerSize = nifti2HeaderSize
	}

	buf := make([]byte, headerSize)
	copy(buf, sizeBytes)
	if _, err := io.ReadFull(r, buf[4:]); err != nil {
		return nil, errors.Newf("failed to read NIfTI-%d header: %w", version, err).
			Category(errors.CategoryFileParsing).
			Build()
	}

	hdr := &Header{Version: version, ByteOrder: order}

	if version == 1 {
		if !validMagic(buf[nifti1MagicOffset:nifti1MagicOffset+3], "n+1", "ni1") {
			return nil, errors.Newf("invalid NIfTI-1 magic").
				Category(errors.CategoryFileParsing).
				Build()
		}
		for i := range hdr.Dim {
			hdr.Dim[i] = int64(int16(order.Uint16(buf[nifti1DimOffset+2*i:])))
		}
	} else {
		if !validMagic(buf[nifti2MagicOffset:nifti2MagicOffset+3], "n+2", "ni2") {
			return nil, errors.Newf("invalid NIfTI-2 magic").
				Category(errors.CategoryFileParsing).
				Build()
		}
		for i := range hdr.Dim {
			hdr.Dim[i] = int64(order.Uint64(buf[nifti2DimOffset+8*i:]))
		}
	}

	if hdr.Dim[0] < 1 || hdr.Dim[0] > 7 {
		return nil, errors.Newf("invalid dimension count %d", hdr.Dim[0]).
			Category(errors.CategoryFileParsing).
			Build()
	}

	return hdr, nil
}

func validMagic(got []byte, want ...string) bool {
	for _, w := range want {
		if string(got) == w {
			return true
		}
	}
	return false
}
