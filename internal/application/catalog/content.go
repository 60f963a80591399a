package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// El contenido comercial por producto está externalizado en un YAML
// embebido, indexado por id de producto: cambiar textos no cambia código.
//
//go:embed content/products.yaml
var contentYAML []byte

// FAQ pregunta frecuente de un producto.
type FAQ struct {
	Question string `yaml:"q"`
	Answer   string `yaml:"a"`
}

// ProductExtras contenido comercial de la ficha de producto.
type ProductExtras struct {
	Problem  string   `yaml:"problem"`
	Benefits []string `yaml:"benefits"`
	Target   string   `yaml:"target"`
	FAQs     []FAQ    `yaml:"faqs"`
}

func loadExtras() (map[string]ProductExtras, error) {
	out := map[string]ProductExtras{}
	if err := yaml.Unmarshal(contentYAML, &out); err != nil {
		return nil, fmt.Errorf("catalog: contenido embebido inválido: %w", err)
	}
	return out, nil
}
