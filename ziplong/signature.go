package ziplong

import "github.com/pkg/errors"

// Record signature magnitudes of the ZIP format.
const (
	LocalFileHeaderSig   = 0x04034b50
	CentralFileHeaderSig = 0x02014b50
	// DataDescriptorSig is also used by PKWARE as the split/spanned archive marker.
	DataDescriptorSig   = 0x08074b50
	ArchiveExtraDataSig = 0x08064b50
	// SingleSegmentSplitMarkerSig is the "PK00" prefix of archives that were
	// meant to be split but fit in one segment.
	SingleSegmentSplitMarkerSig = 0x30304b50
	DirectoryEndSig             = 0x06054b50
	Directory64LocatorSig       = 0x07064b50
	Directory64EndSig           = 0x06064b50

	// Zip64MagicValue is stored in 32-bit size and offset fields when the
	// real value lives in the ZIP64 extra field.
	Zip64MagicValue = 0xffffffff
)

// The signatures as Long values. They are read-only; do not reassign them.
// Lookup and Scan use a private registry built from the constants above.
var (
	LocalFileHeader          = New(LocalFileHeaderSig)
	CentralFileHeader        = New(CentralFileHeaderSig)
	DataDescriptor           = New(DataDescriptorSig)
	ArchiveExtraData         = New(ArchiveExtraDataSig)
	SingleSegmentSplitMarker = New(SingleSegmentSplitMarkerSig)
	DirectoryEnd             = New(DirectoryEndSig)
	Directory64Locator       = New(Directory64LocatorSig)
	Directory64End           = New(Directory64EndSig)
	Zip64Magic               = New(Zip64MagicValue)
)

// Signature is a named well-known Long.
type Signature struct {
	Long
	Name string
	Note string
}

var registry = []Signature{
	{New(LocalFileHeaderSig), "LOCAL_FILE_HEADER", "start of a local file header record"},
	{New(CentralFileHeaderSig), "CENTRAL_FILE_HEADER", "start of a central directory file header"},
	{New(DataDescriptorSig), "DATA_DESCRIPTOR", "post-data size/crc descriptor or split archive marker"},
	{New(ArchiveExtraDataSig), "ARCHIVE_EXTRA_DATA", "archive extra data record"},
	{New(SingleSegmentSplitMarkerSig), "SINGLE_SEGMENT_SPLIT_MARKER", "split archive that needed a single segment (PK00)"},
	{New(DirectoryEndSig), "DIRECTORY_END", "end of central directory record"},
	{New(Directory64LocatorSig), "DIRECTORY64_LOCATOR", "zip64 end of central directory locator"},
	{New(Directory64EndSig), "DIRECTORY64_END", "zip64 end of central directory record"},
	{New(Zip64MagicValue), "ZIP64_MAGIC_VALUE", "32-bit field placeholder, real value in the zip64 extra field"},
}

// Signatures returns a copy of the registry in declaration order.
func Signatures() []Signature {
	out := make([]Signature, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the registered signature equal to l.
func Lookup(l Long) (Signature, bool) {
	for _, s := range registry {
		if s.Long == l {
			return s, true
		}
	}
	return Signature{}, false
}

// LookupName returns the signature registered under name, e.g. "LOCAL_FILE_HEADER".
func LookupName(name string) (Signature, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}
	return Signature{}, false
}

// Identify decodes the field at off and matches it against the registry.
func Identify(b []byte, off int) (Signature, error) {
	l, err := FromBytes(b, off)
	if err != nil {
		return Signature{}, err
	}
	s, ok := Lookup(l)
	if !ok {
		return Signature{}, errors.Wrapf(ErrUnknownSignature, "0x%08x at offset %d", l.Uint32(), off)
	}
	return s, nil
}
