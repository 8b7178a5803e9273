package app

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/xenking/kart-basket/internal/domain/product"
)

// Document is a basket description: the catalog to construct, the items to
// add, and the product ids to remove afterwards.
type Document struct {
	Catalog []CatalogEntry `yaml:"catalog"`
	Items   []ItemEntry    `yaml:"items"`
	// Remove holds raw keys; they are passed to Basket.DeleteProduct as decoded.
	Remove []yaml.Node `yaml:"remove"`
}

// CatalogEntry describes one product. Price and weight stay as raw nodes so
// their YAML type can be enforced.
type CatalogEntry struct {
	SKU    string    `yaml:"sku"`
	Name   string    `yaml:"name"`
	Price  yaml.Node `yaml:"price"`
	Weight yaml.Node `yaml:"weight"`
}

// ItemEntry requests Quantity units of the catalog product SKU. A missing
// quantity means 1.
type ItemEntry struct {
	SKU      string    `yaml:"sku"`
	Quantity yaml.Node `yaml:"quantity"`
}

// ParseDocument decodes a YAML basket document. Unknown fields are rejected.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, errors.Wrap(err, "decode document")
	}
	return &doc, nil
}

// intField decodes an integer-tagged scalar. Booleans, floats, strings,
// sequences and mappings are rejected with a type error, even when they
// would convert to a number.
func intField(n *yaml.Node, arg string) (int, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, product.TypeError(arg, "expected an integer", nodeType(n))
	}
	var v int
	if err := n.Decode(&v); err != nil {
		return 0, errors.Wrapf(err, "decode %s", arg)
	}
	return v, nil
}

func nodeType(n *yaml.Node) string {
	switch n.Kind {
	case 0:
		return "nothing"
	case yaml.ScalarNode:
		return strings.TrimPrefix(n.ShortTag(), "!!")
	case yaml.SequenceNode:
		return "seq"
	case yaml.MappingNode:
		return "map"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
