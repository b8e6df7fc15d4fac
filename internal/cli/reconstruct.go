package cli

import (
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gendx/horcrux/internal/gf2n"
	"github.com/gendx/horcrux/internal/mnemonic"
	"github.com/gendx/horcrux/internal/secmem"
	horcruxerrors "github.com/gendx/horcrux/pkg/errors"
)

func newReconstructCommand() *cobra.Command {
	var (
		bitsize    int
		scheme     string
		k          int
		sharesFile string
		at         string
		format     string
		secretFile string
	)

	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Reconstruct a secret from k or more shares",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !containsInt(gf2n.SupportedBitsizes, bitsize) {
				return horcruxerrors.New(horcruxerrors.CodeInvalidInput, "unsupported --bitsize")
			}

			lines, err := ReadShares(sharesFile)
			if err != nil {
				return horcruxerrors.Wrap(horcruxerrors.CodeNotFound, "read shares", err)
			}
			if len(lines) < k {
				return horcruxerrors.New(horcruxerrors.CodeInsufficient, "not enough shares").
					WithSuggestion("supply at least k shares")
			}

			// The assembled share set sits in mlock'd, zero-on-release memory for
			// the span between reading it off disk and feeding it to Lagrange
			// interpolation.
			secureShares := secmem.New([]byte(strings.Join(lines, "\n")))
			defer secureShares.Destroy()

			state.logger.DebugAttrs("reconstruct",
				slog.Int("bitsize", bitsize),
				slog.String("scheme", scheme),
				slog.Int("k", k),
				slog.Int("shares_supplied", len(lines)),
			)

			secretHex, err := reconstructHex(bitsize, scheme, lines, k, at)
			if err != nil {
				state.logger.ErrorAttrs("reconstruct failed", slog.String("error", err.Error()))
				return horcruxerrors.Wrap(horcruxerrors.CodeInvalidInput, "reconstruct", err)
			}

			secretBytes, err := hex.DecodeString(secretHex)
			if err != nil {
				return horcruxerrors.Wrap(horcruxerrors.CodeInternal, "decode reconstructed secret", err)
			}
			secureSecret := secmem.New(secretBytes)
			defer secureSecret.Destroy()
			for i := range secretBytes {
				secretBytes[i] = 0
			}

			if secretFile != "" {
				if err := WriteSecretHex(secretFile, hex.EncodeToString(secureSecret.Bytes())); err != nil {
					return horcruxerrors.Wrap(horcruxerrors.CodeInternal, "write secret", err)
				}
			}

			switch format {
			case "hex":
				return state.formatter.Secret(hex.EncodeToString(secureSecret.Bytes()))
			case "bip39":
				phrase, err := mnemonic.Encode(secureSecret.Bytes())
				if err != nil {
					return horcruxerrors.Wrap(horcruxerrors.CodeInvalidInput, "encode mnemonic", err)
				}
				return state.formatter.Secret(phrase)
			default:
				return horcruxerrors.New(horcruxerrors.CodeInvalidInput, "--format-type must be hex or bip39")
			}
		},
	}

	cmd.Flags().IntVar(&bitsize, "bitsize", 256, "field size in bits")
	cmd.Flags().StringVar(&scheme, "type", "compact", "share scheme: compact or random")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "reconstruction threshold")
	cmd.Flags().StringVar(&sharesFile, "shares", "", "file containing shares, one per line")
	cmd.Flags().StringVar(&at, "at", "", "evaluate the polynomial at this x-coordinate instead of recovering the secret")
	cmd.Flags().StringVar(&format, "format-type", "hex", "secret encoding to print: hex or bip39")
	cmd.Flags().StringVar(&secretFile, "secret-out", "", "file to write the reconstructed secret to, hex-encoded")
	_ = cmd.MarkFlagRequired("shares")
	_ = cmd.MarkFlagRequired("k")

	return cmd
}
