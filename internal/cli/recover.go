package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/vss-go/pkg/vss/logging"
	"github.com/hsiuhsiu/vss-go/pkg/vss/shamir"
	"github.com/hsiuhsiu/vss-go/pkg/vss/wire"
)

func (a *app) recoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recover <share files...>",
		Short: "Recover the secret from exactly threshold shares",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRecover(cmd.Context(), args)
		},
	}
}

func (a *app) runRecover(ctx context.Context, paths []string) error {
	set, err := readShares(paths, a.wantGroup())
	if err != nil {
		return err
	}
	scheme, err := shamir.New(set.group, set.config, shamir.WithLogger(a.logger))
	if err != nil {
		return err
	}
	secret, err := scheme.Recover(set.shares)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "secret recovered", logging.Redacted("secret"), "shares", len(set.shares))
	fmt.Fprintln(a.out, FormatSecret(secret))
	return nil
}

func (a *app) deriveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive --index <i> <share files...>",
		Short: "Re-derive the share at an index from threshold other shares",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDerive(cmd.Context(), args)
		},
	}
	cmd.Flags().Int("index", 0, "index of the share to derive")
	cmd.Flags().String("out", "", "write the share document here instead of stdout")
	_ = cmd.MarkFlagRequired("index")
	return cmd
}

func (a *app) runDerive(ctx context.Context, paths []string) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	set, err := readShares(paths, a.wantGroup())
	if err != nil {
		return err
	}
	scheme, err := shamir.New(set.group, set.config, shamir.WithLogger(a.logger))
	if err != nil {
		return err
	}
	share, err := scheme.Derive(set.shares, a.v.GetInt("index"))
	if err != nil {
		return err
	}
	doc, err := wire.EncodeShare(set.group, set.config, share)
	if err != nil {
		return err
	}

	if path := a.v.GetString("out"); path != "" {
		f := wire.FormatForPath(path)
		if err := writeDocument(path, f, doc, 0o600); err != nil {
			return fmt.Errorf("write share %d: %w", share.Index, err)
		}
		a.logger.Info(ctx, "share derived", "index", share.Index, "path", path)
		return nil
	}
	data, err := wire.Marshal(s.Format, doc)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}
