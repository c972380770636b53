package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/feldman"
	"github.com/hsiuhsiu/vss-go/pkg/vss/wire"
)

// ErrVerificationFailed is returned when at least one share does not match its
// commitments.
var ErrVerificationFailed = errors.New("vss-go: share verification failed")

func (a *app) verifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify --commitments <file> <share files...>",
		Short: "Verify shares against published commitments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd.Context(), args)
		},
	}
	cmd.Flags().String("commitments", "", "commitments document")
	_ = cmd.MarkFlagRequired("commitments")
	return cmd
}

func (a *app) runVerify(ctx context.Context, paths []string) error {
	cpath := a.v.GetString("commitments")
	var cdoc wire.CommitmentDocument
	if err := readDocument(cpath, &cdoc); err != nil {
		return err
	}
	g, cfg, commitments, err := wire.DecodeCommitments(cdoc, a.wantGroup())
	if err != nil {
		return fmt.Errorf("%s: %w", cpath, err)
	}
	scheme, err := feldman.New(g, cfg, feldman.WithLogger(a.logger))
	if err != nil {
		return err
	}

	set, err := readShares(paths, g.Name())
	if err != nil {
		return err
	}
	if !set.header.Matches(cdoc.Header) {
		return fmt.Errorf("%w: shares are t=%d n=%d, commitments t=%d n=%d", vss.ErrGroupMismatch,
			set.header.Threshold, set.header.ShareAmount, cdoc.Threshold, cdoc.ShareAmount)
	}

	failed := 0
	for i, sh := range set.shares {
		ok, err := scheme.Verify(sh, feldman.Commitments(commitments))
		if err != nil {
			return fmt.Errorf("%s: %w", set.paths[i], err)
		}
		status := "OK"
		if !ok {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(a.out, "%s: share %d %s\n", set.paths[i], sh.Index, status)
	}
	a.logger.Debug(ctx, "verify complete", "shares", len(set.shares), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d shares", ErrVerificationFailed, failed, len(set.shares))
	}
	return nil
}
