package ziplong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureValues(t *testing.T) {
	tests := map[string]int64{
		"LOCAL_FILE_HEADER":           0x04034b50,
		"CENTRAL_FILE_HEADER":         0x02014b50,
		"DATA_DESCRIPTOR":             0x08074b50,
		"ARCHIVE_EXTRA_DATA":          0x08064b50,
		"SINGLE_SEGMENT_SPLIT_MARKER": 0x30304b50,
		"DIRECTORY_END":               0x06054b50,
		"DIRECTORY64_LOCATOR":         0x07064b50,
		"DIRECTORY64_END":             0x06064b50,
		"ZIP64_MAGIC_VALUE":           0xffffffff,
	}
	require.Len(t, Signatures(), len(tests))
	for name, want := range tests {
		s, ok := LookupName(name)
		require.True(t, ok, name)
		assert.Equal(t, want, s.Value(), name)
		assert.NotEmpty(t, s.Note, name)
	}
	assert.Equal(t, int64(0x04034b50), LocalFileHeader.Value())
	assert.Equal(t, int64(0x02014b50), CentralFileHeader.Value())
}

func TestSignatureConstants(t *testing.T) {
	assert.Equal(t, New(LocalFileHeaderSig), LocalFileHeader)
	assert.Equal(t, New(CentralFileHeaderSig), CentralFileHeader)
	assert.Equal(t, New(DataDescriptorSig), DataDescriptor)
	assert.Equal(t, New(ArchiveExtraDataSig), ArchiveExtraData)
	assert.Equal(t, New(SingleSegmentSplitMarkerSig), SingleSegmentSplitMarker)
	assert.Equal(t, New(DirectoryEndSig), DirectoryEnd)
	assert.Equal(t, New(Directory64LocatorSig), Directory64Locator)
	assert.Equal(t, New(Directory64EndSig), Directory64End)
	assert.Equal(t, New(Zip64MagicValue), Zip64Magic)

	// the registry holds its own values, independent of the exported vars
	for _, s := range Signatures() {
		v, ok := LookupName(s.Name)
		require.True(t, ok)
		assert.Equal(t, s, v)
	}
	s, ok := Lookup(New(LocalFileHeaderSig))
	require.True(t, ok)
	assert.Equal(t, "LOCAL_FILE_HEADER", s.Name)
}

func TestSignaturesIsCopy(t *testing.T) {
	s := Signatures()
	s[0].Name = "changed"
	s[0].Long = New(0)
	assert.Equal(t, "LOCAL_FILE_HEADER", Signatures()[0].Name)
	assert.Equal(t, LocalFileHeader, Signatures()[0].Long)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup(MustFromBytes([]byte("PK00"), 0))
	require.True(t, ok)
	assert.Equal(t, "SINGLE_SEGMENT_SPLIT_MARKER", s.Name)

	_, ok = Lookup(New(0x12345678))
	assert.False(t, ok)
	_, ok = LookupName("nope")
	assert.False(t, ok)
}

func TestIdentify(t *testing.T) {
	s, err := Identify([]byte("xxPK\x05\x06"), 2)
	require.NoError(t, err)
	assert.Equal(t, DirectoryEnd, s.Long)

	_, err = Identify([]byte{1, 2, 3, 4}, 0)
	require.ErrorIs(t, err, ErrUnknownSignature)
	assert.Contains(t, err.Error(), "0x04030201")

	_, err = Identify([]byte("PK"), 0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}
