// Package fixtures loads and saves compressed golden framebuffers used
// by scanline-compositor regression tests. A golden frame is a raw
// width*height stream of little-endian uint32 0x00RRGGBB cells,
// compressed with either brotli (.br) or stored inside a 7z archive
// (.7z) alongside ROM fixtures too large to keep uncompressed.
package fixtures

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
	"github.com/google/brotli/go/cbrotli"
)

// LoadGoldenFrame reads a golden frame fixture and decodes it into
// row-major width x height cells. The file extension selects the
// decompressor: .br for a raw brotli stream, .7z for the first entry
// of a 7-Zip archive, anything else is read uncompressed.
func LoadGoldenFrame(path string, width, height int) ([][]uint32, error) {
	raw, err := readFixture(path)
	if err != nil {
		return nil, err
	}

	want := width * height * 4
	if len(raw) != want {
		return nil, fmt.Errorf("fixtures: %s decoded to %d bytes, want %d", path, len(raw), want)
	}

	frame := make([][]uint32, height)
	for y := 0; y < height; y++ {
		row := make([]uint32, width)
		for x := 0; x < width; x++ {
			off := (y*width + x) * 4
			row[x] = binary.LittleEndian.Uint32(raw[off : off+4])
		}
		frame[y] = row
	}
	return frame, nil
}

func readFixture(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".br":
		r := cbrotli.NewReader(f)
		defer r.Close()
		return io.ReadAll(r)
	case ".7z":
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		archive, err := sevenzip.NewReader(f, info.Size())
		if err != nil {
			return nil, err
		}
		if len(archive.File) == 0 {
			return nil, fmt.Errorf("fixtures: %s is empty", path)
		}
		entry, err := archive.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer entry.Close()
		return io.ReadAll(entry)
	default:
		return io.ReadAll(f)
	}
}

// SaveGoldenFrame brotli-encodes frame and writes it to path, for
// regenerating fixtures after an intentional compositor change.
func SaveGoldenFrame(path string, frame [][]uint32) error {
	var raw bytes.Buffer
	buf := make([]byte, 4)
	for _, row := range frame {
		for _, cell := range row {
			binary.LittleEndian.PutUint32(buf, cell)
			raw.Write(buf)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := cbrotli.NewWriter(f, cbrotli.WriterOptions{Quality: 9})
	defer w.Close()
	_, err = w.Write(raw.Bytes())
	return err
}
