package ziplong

// Match is a signature found at Offset in a scanned block.
type Match struct {
	Offset int
	Signature
}

// Scan reports every position in b holding one of sigs, in offset order.
// With no sigs the record signatures of the registry are used. The zip64
// sentinel is never matched implicitly since 0xffffffff is common data.
func Scan(b []byte, sigs ...Signature) []Match {
	if len(sigs) == 0 {
		for _, s := range registry {
			if s.Value() != Zip64MagicValue {
				sigs = append(sigs, s)
			}
		}
	}
	pkOnly := !hasNonPK(sigs)
	var out []Match
	for i := 0; i+Size <= len(b); i++ {
		// every record signature starts with "PK"
		if pkOnly && (b[i] != 'P' || b[i+1] != 'K') {
			continue
		}
		l := MustFromBytes(b, i)
		for _, s := range sigs {
			if s.Long.Uint32() == l.Uint32() {
				out = append(out, Match{Offset: i, Signature: s})
				break
			}
		}
	}
	return out
}

func hasNonPK(sigs []Signature) bool {
	for _, s := range sigs {
		if s.Uint32()&0xffff != 0x4b50 {
			return true
		}
	}
	return false
}
