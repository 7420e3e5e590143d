package vectorindex

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FlatL2TestSuite struct {
	suite.Suite
	index *FlatL2
}

func TestFlatL2Suite(t *testing.T) {
	suite.Run(t, new(FlatL2TestSuite))
}

func (s *FlatL2TestSuite) SetupTest() {
	index, err := NewFlatL2(2)
	s.Require().NoError(err)
	s.Require().NoError(index.Add(
		[]float32{0, 0},
		[]float32{1, 0},
		[]float32{0, 3},
		[]float32{1, 0},
	))
	s.index = index
}

func (s *FlatL2TestSuite) TestNewFlatL2_RejectsInvalidDimension() {
	_, err := NewFlatL2(0)
	s.ErrorIs(err, ErrInvalidDimension)
}

func (s *FlatL2TestSuite) TestAdd_DimensionMismatchAddsNothing() {
	err := s.index.Add([]float32{1, 1}, []float32{1, 2, 3})
	s.ErrorIs(err, ErrDimensionMismatch)
	s.Equal(4, s.index.Len())
}

func (s *FlatL2TestSuite) TestSearch_OrdersByDistanceThenPosition() {
	hits, err := s.index.Search([]float32{1, 0}, 3)
	s.Require().NoError(err)
	s.Require().Len(hits, 3)

	s.Equal(1, hits[0].Position)
	s.Equal(0.0, hits[0].Distance)
	s.Equal(3, hits[1].Position)
	s.Equal(0.0, hits[1].Distance)
	s.Equal(0, hits[2].Position)
	s.Equal(1.0, hits[2].Distance)
}

func (s *FlatL2TestSuite) TestSearch_KLargerThanIndexReturnsAll() {
	hits, err := s.index.Search([]float32{0, 0}, 50)
	s.Require().NoError(err)
	s.Len(hits, 4)
	s.Equal(10.0, hits[3].Distance)
}

func (s *FlatL2TestSuite) TestSearch_InvalidArguments() {
	testCases := []struct {
		name  string
		query []float32
		k     int
		err   error
	}{
		{"zero k", []float32{0, 0}, 0, ErrInvalidK},
		{"negative k", []float32{0, 0}, -1, ErrInvalidK},
		{"wrong dimension", []float32{0}, 1, ErrDimensionMismatch},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.index.Search(tc.query, tc.k)
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *FlatL2TestSuite) TestSearch_EmptyIndex() {
	empty, err := NewFlatL2(3)
	s.Require().NoError(err)

	hits, err := empty.Search([]float32{1, 2, 3}, 5)
	s.NoError(err)
	s.Empty(hits)
}

func (s *FlatL2TestSuite) TestVector_ReturnsCopy() {
	v := s.index.Vector(2)
	s.Equal([]float32{0, 3}, v)

	v[0] = 42
	s.Equal([]float32{0, 3}, s.index.Vector(2))
}

func (s *FlatL2TestSuite) TestCodec_RoundTrip() {
	var buf bytes.Buffer
	n, err := s.index.WriteTo(&buf)
	s.Require().NoError(err)
	s.Equal(int64(buf.Len()), n)

	decoded, err := Decode(&buf)
	s.Require().NoError(err)
	s.Equal(s.index.Dim(), decoded.Dim())
	s.Equal(s.index.Len(), decoded.Len())

	want, err := s.index.Search([]float32{0.5, 1}, 4)
	s.Require().NoError(err)
	got, err := decoded.Search([]float32{0.5, 1}, 4)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *FlatL2TestSuite) TestDecode_RejectsCorruptData() {
	var buf bytes.Buffer
	_, err := s.index.WriteTo(&buf)
	s.Require().NoError(err)
	valid := buf.Bytes()

	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"bad magic", append([]byte("XXXX"), valid[4:]...)},
		{"truncated", valid[:len(valid)-3]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x01)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := Decode(bytes.NewReader(tc.data))
			s.ErrorIs(err, ErrCorruptIndex)
		})
	}
}

func (s *FlatL2TestSuite) TestDecode_RejectsOverflowingCount() {
	header := []byte(codecMagic)
	header = binary.LittleEndian.AppendUint32(header, codecVersion)
	header = binary.LittleEndian.AppendUint32(header, 2)
	// count*dim wraps to zero in 64 bits
	header = binary.LittleEndian.AppendUint64(header, 1<<63)

	_, err := Decode(bytes.NewReader(header))

	s.ErrorIs(err, ErrCorruptIndex)
	s.ErrorContains(err, "too large")
}
