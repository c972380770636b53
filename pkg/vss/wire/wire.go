package wire

import (
	"encoding/hex"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
	"github.com/hsiuhsiu/vss-go/pkg/vss/groups"
)

// Header identifies the scheme a document was produced under.
type Header struct {
	Group       string `json:"group" yaml:"group"`
	Threshold   int    `json:"threshold" yaml:"threshold"`
	ShareAmount int    `json:"share_amount" yaml:"share_amount"`
}

// NewHeader builds the header for a scheme over g.
func NewHeader(g group.Group, cfg vss.Config) Header {
	return Header{Group: g.Name(), Threshold: cfg.Threshold, ShareAmount: cfg.ShareAmount}
}

// Config returns the scheme parameters recorded in the header.
func (h Header) Config() vss.Config {
	return vss.Config{Threshold: h.Threshold, ShareAmount: h.ShareAmount}
}

// Resolve looks up the header's group and validates its parameters. A
// non-empty want must match the group name.
func (h Header) Resolve(want string) (group.Group, vss.Config, error) {
	if want != "" && h.Group != want {
		return nil, vss.Config{}, vss.Errorf("Resolve", "%w: document is %q, want %q", vss.ErrGroupMismatch, h.Group, want)
	}
	g, err := groups.Lookup(h.Group)
	if err != nil {
		return nil, vss.Config{}, err
	}
	cfg := h.Config()
	if err := cfg.Validate(); err != nil {
		return nil, vss.Config{}, err
	}
	return g, cfg, nil
}

// Matches reports whether two headers describe the same scheme.
func (h Header) Matches(o Header) bool {
	return h == o
}

// ShareDocument is the portable form of one share.
type ShareDocument struct {
	Header `yaml:",inline"`
	Index  int    `json:"index" yaml:"index"`
	Value  string `json:"value" yaml:"value"`
}

// CommitmentDocument is the portable form of a Feldman commitment vector.
type CommitmentDocument struct {
	Header      `yaml:",inline"`
	Commitments []string `json:"commitments" yaml:"commitments"`
}

// EncodeShare converts share into a document for a scheme over g.
func EncodeShare(g group.Group, cfg vss.Config, share vss.Share) (ShareDocument, error) {
	if g == nil {
		return ShareDocument{}, vss.Errorf("EncodeShare", "%w", vss.ErrNilGroup)
	}
	if share.Value == nil {
		return ShareDocument{}, vss.Errorf("EncodeShare", "%w: share %d has no value", vss.ErrInvalidShare, share.Index)
	}
	raw := share.Value.Bytes()
	defer vss.ZeroizeBytes(raw)
	return ShareDocument{
		Header: NewHeader(g, cfg),
		Index:  share.Index,
		Value:  hex.EncodeToString(raw),
	}, nil
}

// DecodeShare resolves the document's group, checks it against want, and
// decodes the share. The index is range-checked against the header.
func DecodeShare(doc ShareDocument, want string) (group.Group, vss.Config, vss.Share, error) {
	g, cfg, err := doc.Resolve(want)
	if err != nil {
		return nil, vss.Config{}, vss.Share{}, err
	}
	if !cfg.ValidIndex(doc.Index) {
		return nil, vss.Config{}, vss.Share{}, vss.Errorf("DecodeShare", "%w: index %d not in 1..%d",
			vss.ErrIndexOutOfRange, doc.Index, cfg.ShareAmount)
	}
	raw, err := hex.DecodeString(doc.Value)
	if err != nil {
		return nil, vss.Config{}, vss.Share{}, vss.Errorf("DecodeShare", "%w: value: %v", vss.ErrEncoding, err)
	}
	defer vss.ZeroizeBytes(raw)
	value, err := g.DecodeScalar(raw)
	if err != nil {
		return nil, vss.Config{}, vss.Share{}, err
	}
	return g, cfg, vss.Share{Index: doc.Index, Value: value}, nil
}

// EncodeCommitments converts a commitment vector into a document for a scheme
// over g.
func EncodeCommitments(g group.Group, cfg vss.Config, commitments []group.Element) (CommitmentDocument, error) {
	if g == nil {
		return CommitmentDocument{}, vss.Errorf("EncodeCommitments", "%w", vss.ErrNilGroup)
	}
	if len(commitments) != cfg.Threshold {
		return CommitmentDocument{}, vss.Errorf("EncodeCommitments", "%w: want %d commitments, got %d",
			vss.ErrCommitmentLength, cfg.Threshold, len(commitments))
	}
	out := make([]string, len(commitments))
	for i, c := range commitments {
		if c == nil {
			return CommitmentDocument{}, vss.Errorf("EncodeCommitments", "%w: commitment %d is nil", vss.ErrInvalidShare, i)
		}
		b, err := c.Bytes()
		if err != nil {
			return CommitmentDocument{}, err
		}
		out[i] = hex.EncodeToString(b)
	}
	return CommitmentDocument{Header: NewHeader(g, cfg), Commitments: out}, nil
}

// DecodeCommitments resolves the document's group, checks it against want,
// and decodes the commitment vector. The vector length must equal the
// threshold in the header.
func DecodeCommitments(doc CommitmentDocument, want string) (group.Group, vss.Config, []group.Element, error) {
	g, cfg, err := doc.Resolve(want)
	if err != nil {
		return nil, vss.Config{}, nil, err
	}
	if len(doc.Commitments) != cfg.Threshold {
		return nil, vss.Config{}, nil, vss.Errorf("DecodeCommitments", "%w: want %d commitments, got %d",
			vss.ErrCommitmentLength, cfg.Threshold, len(doc.Commitments))
	}
	out := make([]group.Element, len(doc.Commitments))
	for i, s := range doc.Commitments {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, vss.Config{}, nil, vss.Errorf("DecodeCommitments", "%w: commitment %d: %v", vss.ErrEncoding, i, err)
		}
		e, err := g.DecodeElement(raw)
		if err != nil {
			return nil, vss.Config{}, nil, err
		}
		out[i] = e
	}
	return g, cfg, out, nil
}
