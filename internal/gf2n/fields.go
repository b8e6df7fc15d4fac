package gf2n

// The thirteen binary extension fields this package supports, each defined
// by its reduction tetranomial x^N + x^A + x^B + x^C + 1. The exponents are
// fixed constants, not configuration: changing them changes the field.
var (
	GF8    = New[uint8]("GF8", 8, 4, 3, 1)
	GF16   = New[uint16]("GF16", 16, 5, 3, 1)
	GF32   = New[uint32]("GF32", 32, 7, 3, 2)
	GF64   = New[uint64]("GF64", 64, 4, 3, 1)
	GF128  = New[uint64]("GF128", 128, 7, 2, 1)
	GF192  = New[uint64]("GF192", 192, 7, 2, 1)
	GF256  = New[uint64]("GF256", 256, 10, 5, 2)
	GF384  = New[uint64]("GF384", 384, 12, 3, 2)
	GF512  = New[uint64]("GF512", 512, 8, 5, 2)
	GF768  = New[uint64]("GF768", 768, 19, 17, 4)
	GF1024 = New[uint64]("GF1024", 1024, 19, 6, 1)
	GF1536 = New[uint64]("GF1536", 1536, 21, 6, 2)
	GF2048 = New[uint64]("GF2048", 2048, 19, 14, 13)
)

// SupportedBitsizes lists the field degrees this package knows how to build,
// in ascending order. The CLI (internal/cli) uses this to validate
// --bitsize; its --bitsize-to-field dispatch switch lists the same sizes by
// hand.
var SupportedBitsizes = []int{8, 16, 32, 64, 128, 192, 256, 384, 512, 768, 1024, 1536, 2048}

// ByBitsize returns the *Params[uint64] for one of the ten 64-bit-word
// fields (everything from GF64 up), or false if n isn't one of them. The
// three smaller fields (GF8, GF16, GF32) use a different Go word type and so
// can't be returned through this uniform accessor; callers that need to
// dispatch across all thirteen sizes (e.g. the CLI) switch on n directly.
func ByBitsize(n int) (*Params[uint64], bool) {
	switch n {
	case 64:
		return GF64, true
	case 128:
		return GF128, true
	case 192:
		return GF192, true
	case 256:
		return GF256, true
	case 384:
		return GF384, true
	case 512:
		return GF512, true
	case 768:
		return GF768, true
	case 1024:
		return GF1024, true
	case 1536:
		return GF1536, true
	case 2048:
		return GF2048, true
	default:
		return nil, false
	}
}
