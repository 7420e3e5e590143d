package vectorindex

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	codecMagic   = "FL2V"
	codecVersion = uint32(1)

	// maxDecodeValues bounds allocations when reading a corrupt header.
	maxDecodeValues = 1 << 31
)

var ErrCorruptIndex = errors.New("corrupt vector index data")

// WriteTo encodes the index as: magic, version, dim, count, then
// count*dim little-endian float32 values.
func (ix *FlatL2) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	header := make([]byte, 0, 4+4+4+8)
	header = append(header, codecMagic...)
	header = binary.LittleEndian.AppendUint32(header, codecVersion)
	header = binary.LittleEndian.AppendUint32(header, uint32(ix.dim))
	header = binary.LittleEndian.AppendUint64(header, uint64(ix.Len()))
	if _, err := cw.Write(header); err != nil {
		return cw.n, fmt.Errorf("failed to write index header: %w", err)
	}

	var buf [4]byte
	for _, v := range ix.data {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		if _, err := cw.Write(buf[:]); err != nil {
			return cw.n, fmt.Errorf("failed to write index vectors: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to flush index data: %w", err)
	}
	return cw.n, nil
}

// Decode reads an index previously written with WriteTo
func Decode(r io.Reader) (*FlatL2, error) {
	br := bufio.NewReader(r)

	header := make([]byte, 4+4+4+8)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("%w: short header: %v", ErrCorruptIndex, err)
	}
	if string(header[:4]) != codecMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptIndex, header[:4])
	}
	if v := binary.LittleEndian.Uint32(header[4:8]); v != codecVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptIndex, v)
	}

	dim := int(binary.LittleEndian.Uint32(header[8:12]))
	count := binary.LittleEndian.Uint64(header[12:20])
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension %d", ErrCorruptIndex, dim)
	}
	if count > maxDecodeValues/uint64(dim) {
		return nil, fmt.Errorf("%w: %d vectors of dimension %d is too large", ErrCorruptIndex, count, dim)
	}
	total := count * uint64(dim)

	data := make([]float32, total)
	var buf [4]byte
	for i := range data {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated at value %d of %d", ErrCorruptIndex, i, total)
		}
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[:]))
	}

	if _, err := br.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing bytes after %d vectors", ErrCorruptIndex, count)
	}

	return &FlatL2{dim: dim, data: data}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
