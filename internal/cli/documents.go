package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
	"github.com/hsiuhsiu/vss-go/pkg/vss/wire"
)

// shareSet is a batch of share files that belong to one scheme.
type shareSet struct {
	header wire.Header
	group  group.Group
	config vss.Config
	paths  []string
	shares []vss.Share
}

func readDocument(path string, doc any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	defer vss.ZeroizeBytes(data)
	if err := wire.Unmarshal(wire.FormatForPath(path), data, doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func writeDocument(path string, f wire.Format, doc any, perm os.FileMode) error {
	data, err := wire.Marshal(f, doc)
	if err != nil {
		return err
	}
	defer vss.ZeroizeBytes(data)
	return os.WriteFile(path, data, perm)
}

// readShares loads share documents and checks they share one header.
func readShares(paths []string, want string) (*shareSet, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no share files given")
	}
	set := &shareSet{paths: paths}
	for i, path := range paths {
		var doc wire.ShareDocument
		if err := readDocument(path, &doc); err != nil {
			return nil, err
		}
		g, cfg, share, err := wire.DecodeShare(doc, want)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if i == 0 {
			set.header, set.group, set.config = doc.Header, g, cfg
			want = g.Name()
		} else if !doc.Header.Matches(set.header) {
			return nil, fmt.Errorf("%s: %w: share belongs to %s t=%d n=%d, first share to %s t=%d n=%d",
				path, vss.ErrGroupMismatch, doc.Group, doc.Threshold, doc.ShareAmount,
				set.header.Group, set.header.Threshold, set.header.ShareAmount)
		}
		set.shares = append(set.shares, share)
	}
	return set, nil
}

func sharePath(dir string, index int, f wire.Format) string {
	return filepath.Join(dir, fmt.Sprintf("share-%d%s", index, f.Ext()))
}

func commitmentsPath(dir string, f wire.Format) string {
	return filepath.Join(dir, "commitments"+f.Ext())
}
