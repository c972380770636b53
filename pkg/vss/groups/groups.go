// Package groups resolves group backends by name.
package groups

import (
	"sort"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group/nist"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group/ristretto255"
	"github.com/hsiuhsiu/vss-go/pkg/vss/group/secp256k1"
)

// Default is the group used when none is named.
const Default = secp256k1.Name

var registry = map[string]group.Group{
	secp256k1.Name:    secp256k1.New(),
	ristretto255.Name: ristretto255.New(),
	nist.NameP256:     nist.P256(),
	nist.NameP384:     nist.P384(),
	nist.NameP521:     nist.P521(),
}

// Lookup returns the group registered under name.
func Lookup(name string) (group.Group, error) {
	g, ok := registry[name]
	if !ok {
		return nil, vss.Errorf("Lookup", "%w: %q", vss.ErrUnknownGroup, name)
	}
	return g, nil
}

// Names returns the registered group names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered group, ordered by name.
func All() []group.Group {
	names := Names()
	out := make([]group.Group, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}
	return out
}
