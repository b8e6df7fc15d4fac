package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gendx/horcrux/internal/gf2n"
	"github.com/gendx/horcrux/internal/mnemonic"
	"github.com/gendx/horcrux/internal/secmem"
	horcruxerrors "github.com/gendx/horcrux/pkg/errors"
)

func newSplitCommand() *cobra.Command {
	var (
		bitsize    int
		scheme     string
		n, k       int
		secretFile string
		format     string
		sharesFile string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into n shares, k of which reconstruct it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bitsize") {
				bitsize = state.cfg.DefaultBitsize
			}
			if !cmd.Flags().Changed("type") {
				scheme = state.cfg.DefaultScheme
			}
			if !containsInt(gf2n.SupportedBitsizes, bitsize) {
				return horcruxerrors.New(horcruxerrors.CodeInvalidInput, "unsupported --bitsize").
					WithDetails(fmt.Sprintf("got %d", bitsize)).
					WithSuggestion("choose one of the supported field sizes")
			}
			if n < k || k < 1 {
				return horcruxerrors.New(horcruxerrors.CodeInvalidInput, "invalid -n/-k")
			}

			var secretBytes []byte
			switch format {
			case "hex":
				hexSecret, err := ReadSecretHex(secretFile)
				if err != nil {
					return horcruxerrors.Wrap(horcruxerrors.CodeNotFound, "read secret", err)
				}
				decoded, err := hex.DecodeString(hexSecret)
				if err != nil {
					return horcruxerrors.Wrap(horcruxerrors.CodeInvalidInput, "secret is not valid hex", err)
				}
				secretBytes = decoded
			case "bip39":
				phrase, err := ReadSecretHex(secretFile)
				if err != nil {
					return horcruxerrors.Wrap(horcruxerrors.CodeNotFound, "read secret", err)
				}
				entropy, err := mnemonic.Decode(mnemonic.NormalizeMnemonicInput(phrase))
				if err != nil {
					typos := mnemonic.DetectTypos(phrase)
					return horcruxerrors.Wrap(horcruxerrors.CodeInvalidInput, "decode mnemonic secret", err).
						WithDetails(mnemonic.FormatTypoSuggestions(typos))
				}
				secretBytes = entropy
			default:
				return horcruxerrors.New(horcruxerrors.CodeInvalidInput, "--format-type must be hex or bip39")
			}

			// The parsed secret lives in mlock'd, zero-on-release memory from the
			// moment it's decoded until the moment it's consumed by the split.
			secureSecret := secmem.New(secretBytes)
			defer secureSecret.Destroy()
			for i := range secretBytes {
				secretBytes[i] = 0
			}

			state.logger.DebugAttrs("split",
				slog.Int("bitsize", bitsize),
				slog.String("scheme", scheme),
				slog.Int("n", n),
				slog.Int("k", k),
			)

			lines, err := splitHex(bitsize, scheme, hex.EncodeToString(secureSecret.Bytes()), n, k, rand.Reader)
			if err != nil {
				state.logger.ErrorAttrs("split failed", slog.String("error", err.Error()))
				return horcruxerrors.Wrap(horcruxerrors.CodeInvalidInput, "split", err)
			}

			if sharesFile != "" {
				if err := WriteShares(sharesFile, lines); err != nil {
					return horcruxerrors.Wrap(horcruxerrors.CodeInternal, "write shares", err)
				}
			}

			return state.formatter.Shares(bitsize, scheme, k, lines)
		},
	}

	cmd.Flags().IntVar(&bitsize, "bitsize", 256, "field size in bits")
	cmd.Flags().StringVar(&scheme, "type", "compact", "share scheme: compact or random")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "total number of shares")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "reconstruction threshold")
	cmd.Flags().StringVar(&secretFile, "secret", "", "file containing the secret")
	cmd.Flags().StringVar(&format, "format-type", "hex", "secret encoding: hex or bip39")
	cmd.Flags().StringVar(&sharesFile, "shares-out", "", "file to write the generated shares to")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("k")

	return cmd
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
