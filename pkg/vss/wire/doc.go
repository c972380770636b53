// Package wire converts shares and commitment vectors to and from portable
// documents.
//
// Every document carries a Header naming the group, threshold, and share
// amount it was produced under, so a commitment vector cannot silently be
// checked against a scheme it does not belong to. Scalars are hex-encoded
// big-endian and padded to the group's scalar length; elements use the group's
// canonical encoding, also in hex.
//
// Documents marshal as JSON or YAML; see Marshal and Unmarshal.
package wire
