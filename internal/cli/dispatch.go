package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/gendx/horcrux/internal/gf2n"
	"github.com/gendx/horcrux/internal/shamir"
)

// splitHex dispatches --bitsize to the matching gf2n.Params instance and
// runs a split, returning the share lines in the scheme's wire grammar.
// This switch is the one place in the repository that has to enumerate all
// thirteen supported fields by hand: Go's generics are resolved at compile
// time, so there is no way to go from a runtime int to a type parameter
// other than an explicit dispatch table.
func splitHex(bitsize int, scheme, secretHex string, n, k int, rng io.Reader) ([]string, error) {
	switch bitsize {
	case 8:
		return splitGeneric(gf2n.GF8, scheme, secretHex, n, k, rng)
	case 16:
		return splitGeneric(gf2n.GF16, scheme, secretHex, n, k, rng)
	case 32:
		return splitGeneric(gf2n.GF32, scheme, secretHex, n, k, rng)
	case 64:
		return splitGeneric(gf2n.GF64, scheme, secretHex, n, k, rng)
	case 128:
		return splitGeneric(gf2n.GF128, scheme, secretHex, n, k, rng)
	case 192:
		return splitGeneric(gf2n.GF192, scheme, secretHex, n, k, rng)
	case 256:
		return splitGeneric(gf2n.GF256, scheme, secretHex, n, k, rng)
	case 384:
		return splitGeneric(gf2n.GF384, scheme, secretHex, n, k, rng)
	case 512:
		return splitGeneric(gf2n.GF512, scheme, secretHex, n, k, rng)
	case 768:
		return splitGeneric(gf2n.GF768, scheme, secretHex, n, k, rng)
	case 1024:
		return splitGeneric(gf2n.GF1024, scheme, secretHex, n, k, rng)
	case 1536:
		return splitGeneric(gf2n.GF1536, scheme, secretHex, n, k, rng)
	case 2048:
		return splitGeneric(gf2n.GF2048, scheme, secretHex, n, k, rng)
	default:
		return nil, fmt.Errorf("unsupported bitsize %d", bitsize)
	}
}

// reconstructHex is splitHex's counterpart for reconstruction. atHex, when
// non-empty, evaluates the shared polynomial at that x-coordinate instead
// of recovering the secret (x=0).
func reconstructHex(bitsize int, scheme string, shareLines []string, k int, atHex string) (string, error) {
	switch bitsize {
	case 8:
		return reconstructGeneric(gf2n.GF8, scheme, shareLines, k, atHex)
	case 16:
		return reconstructGeneric(gf2n.GF16, scheme, shareLines, k, atHex)
	case 32:
		return reconstructGeneric(gf2n.GF32, scheme, shareLines, k, atHex)
	case 64:
		return reconstructGeneric(gf2n.GF64, scheme, shareLines, k, atHex)
	case 128:
		return reconstructGeneric(gf2n.GF128, scheme, shareLines, k, atHex)
	case 192:
		return reconstructGeneric(gf2n.GF192, scheme, shareLines, k, atHex)
	case 256:
		return reconstructGeneric(gf2n.GF256, scheme, shareLines, k, atHex)
	case 384:
		return reconstructGeneric(gf2n.GF384, scheme, shareLines, k, atHex)
	case 512:
		return reconstructGeneric(gf2n.GF512, scheme, shareLines, k, atHex)
	case 768:
		return reconstructGeneric(gf2n.GF768, scheme, shareLines, k, atHex)
	case 1024:
		return reconstructGeneric(gf2n.GF1024, scheme, shareLines, k, atHex)
	case 1536:
		return reconstructGeneric(gf2n.GF1536, scheme, shareLines, k, atHex)
	case 2048:
		return reconstructGeneric(gf2n.GF2048, scheme, shareLines, k, atHex)
	default:
		return "", fmt.Errorf("unsupported bitsize %d", bitsize)
	}
}

func splitGeneric[W gf2n.Word](p *gf2n.Params[W], scheme, secretHex string, n, k int, rng io.Reader) ([]string, error) {
	secretBytes, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, fmt.Errorf("secret is not valid hex: %w", err)
	}
	secret, ok := gf2n.FromBytes(p, secretBytes)
	if !ok {
		return nil, fmt.Errorf("secret must be exactly %d bytes for %s", p.NBytes(), p.Name)
	}

	switch scheme {
	case "compact":
		shares, err := shamir.CompactSplit(p, secret, n, k, rng)
		if err != nil {
			return nil, err
		}
		lines := make([]string, len(shares))
		for i, s := range shares {
			lines[i] = s.String()
		}
		return lines, nil
	case "random":
		shares, err := shamir.RandomSplit(p, secret, n, k, rng)
		if err != nil {
			return nil, err
		}
		lines := make([]string, len(shares))
		for i, s := range shares {
			lines[i] = s.String()
		}
		return lines, nil
	default:
		return nil, fmt.Errorf("unknown share scheme %q", scheme)
	}
}

func reconstructGeneric[W gf2n.Word](p *gf2n.Params[W], scheme string, shareLines []string, k int, atHex string) (string, error) {
	switch scheme {
	case "compact":
		shares := make([]shamir.CompactShare[W], len(shareLines))
		for i, line := range shareLines {
			s, err := shamir.ParseCompactShare(p, line)
			if err != nil {
				return "", fmt.Errorf("share %d: %w", i+1, err)
			}
			shares[i] = s
		}
		if atHex != "" {
			atBytes, err := hex.DecodeString(atHex)
			if err != nil || len(atBytes) != 1 {
				return "", fmt.Errorf("--at must be a single hex byte for the compact scheme")
			}
			secret, err := shamir.CompactReconstructAt(p, shares, k, atBytes[0])
			if err != nil {
				return "", err
			}
			return secret.String(), nil
		}
		secret, err := shamir.CompactReconstruct(p, shares, k)
		if err != nil {
			return "", err
		}
		return secret.String(), nil
	case "random":
		shares := make([]shamir.RandomShare[W], len(shareLines))
		for i, line := range shareLines {
			s, err := shamir.ParseRandomShare(p, line)
			if err != nil {
				return "", fmt.Errorf("share %d: %w", i+1, err)
			}
			shares[i] = s
		}
		if atHex != "" {
			atBytes, err := hex.DecodeString(atHex)
			if err != nil {
				return "", fmt.Errorf("--at is not valid hex: %w", err)
			}
			at, ok := gf2n.FromBytes(p, atBytes)
			if !ok {
				return "", fmt.Errorf("--at must be exactly %d bytes for %s", p.NBytes(), p.Name)
			}
			secret, err := shamir.RandomReconstructAt(p, shares, k, at)
			if err != nil {
				return "", err
			}
			return secret.String(), nil
		}
		secret, err := shamir.RandomReconstruct(p, shares, k)
		if err != nil {
			return "", err
		}
		return secret.String(), nil
	default:
		return "", fmt.Errorf("unknown share scheme %q", scheme)
	}
}
