package cli

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/feldman"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
	"github.com/hsiuhsiu/vss-go/pkg/vss/groups"
	"github.com/hsiuhsiu/vss-go/pkg/vss/logging"
	"github.com/hsiuhsiu/vss-go/pkg/vss/wire"
)

func (a *app) splitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into shares and publish commitments",
		Long: `Split a secret into --shares shares, any --threshold of which recover it.
Writes share-<i> and commitments documents into --out. Without --secret a
random secret is drawn and only its public key is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSplit(cmd.Context())
		},
	}
	cmd.Flags().String("secret", "", "secret as a decimal or 0x-prefixed hex integer")
	cmd.Flags().String("out", ".", "output directory")
	return cmd
}

func (a *app) runSplit(ctx context.Context) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	g, err := groups.Lookup(s.Group)
	if err != nil {
		return err
	}
	cfg := vss.Config{Threshold: s.Threshold, ShareAmount: s.Shares}
	scheme, err := feldman.New(g, cfg, feldman.WithLogger(a.logger))
	if err != nil {
		return err
	}

	var secret group.Scalar
	if in := a.v.GetString("secret"); in != "" {
		secret, err = ParseSecret(g, in)
	} else {
		secret, err = g.RandomScalar(rand.Reader)
	}
	if err != nil {
		return err
	}

	shares, commitments, err := scheme.Split(rand.Reader, secret)
	if err != nil {
		return err
	}

	// Encode everything before touching the filesystem so a failed split
	// leaves nothing behind.
	cdoc, err := wire.EncodeCommitments(g, cfg, commitments)
	if err != nil {
		return err
	}
	docs := make([]wire.ShareDocument, len(shares))
	for i, sh := range shares {
		if docs[i], err = wire.EncodeShare(g, cfg, sh); err != nil {
			return err
		}
	}

	dir := a.v.GetString("out")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	cpath := commitmentsPath(dir, s.Format)
	if err := writeDocument(cpath, s.Format, cdoc, 0o644); err != nil {
		return fmt.Errorf("write commitments: %w", err)
	}
	for _, doc := range docs {
		if err := writeDocument(sharePath(dir, doc.Index, s.Format), s.Format, doc, 0o600); err != nil {
			return fmt.Errorf("write share %d: %w", doc.Index, err)
		}
	}

	a.logger.Info(ctx, "split written", logging.Redacted("secret"), "dir", dir, "shares", len(shares))
	fmt.Fprintf(a.out, "wrote %d shares and %s\n", len(shares), cpath)
	fmt.Fprintf(a.out, "public key: %s\n", cdoc.Commitments[0])
	return nil
}

// ParseSecret reads a decimal or 0x-prefixed hex integer as a scalar of g. The
// value must lie in [0, order).
func ParseSecret(g group.Group, in string) (group.Scalar, error) {
	n, ok := new(big.Int), false
	if rest, isHex := strings.CutPrefix(strings.ToLower(in), "0x"); isHex {
		_, ok = n.SetString(rest, 16)
	} else {
		_, ok = n.SetString(in, 10)
	}
	if !ok {
		return nil, fmt.Errorf("%w: secret is not a decimal or 0x-hex integer", vss.ErrEncoding)
	}
	if n.Sign() < 0 || n.Cmp(g.Order()) >= 0 {
		return nil, fmt.Errorf("%w: secret must lie in [0, order of %s)", vss.ErrEncoding, g.Name())
	}
	buf := n.FillBytes(make([]byte, g.ScalarLength()))
	defer vss.ZeroizeBytes(buf)
	return g.DecodeScalar(buf)
}

// FormatSecret renders a scalar as a decimal integer.
func FormatSecret(s group.Scalar) string {
	b := s.Bytes()
	defer vss.ZeroizeBytes(b)
	return new(big.Int).SetBytes(b).String()
}
