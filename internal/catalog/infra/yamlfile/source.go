// Package yamlfile loads the catalog from a YAML document of the form
//
//	products:
//	  - sku: item0001
//	    name: Widget
//	    price: 9.99
package yamlfile

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

type document struct {
	Products []productEntry `yaml:"products"`
}

type productEntry struct {
	SKU   string `yaml:"sku"`
	Name  string `yaml:"name"`
	Price price  `yaml:"price"`
}

type price struct {
	value decimal.Decimal
}

func (p *price) UnmarshalYAML(node *yaml.Node) error {
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: price %q: %w", node.Line, node.Value, err)
	}
	p.value = d
	return nil
}

// List re-reads the file on every call so edits show up without a restart.
func (s *Source) List(ctx context.Context) ([]domain.Product, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]domain.Product, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}

	out := make([]domain.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		out = append(out, domain.Product{SKU: p.SKU, Name: p.Name, Price: p.Price.value})
	}
	return out, nil
}
