// SPDX-License-Identifier: MPL-2.0

package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kgreg1/ert/internal/config"
	"github.com/kgreg1/ert/pkg/cueutil"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"sigs.k8s.io/yaml"
)

// encoders maps each export format to its encoder.
var encoders = map[config.ExportFormat]func(Catalog) ([]byte, error){
	config.ExportFormatJSON:     encodeJSON,
	config.ExportFormatYAML:     encodeYAML,
	config.ExportFormatTOML:     encodeTOML,
	config.ExportFormatCUE:      encodeCUE,
	config.ExportFormatMarkdown: encodeMarkdown,
}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c Catalog, format config.ExportFormat) error {
	if valid, errs := format.IsValid(); !valid {
		return errs[0]
	}

	data, err := encoders[format](c)
	if err != nil {
		return fmt.Errorf("encode catalog as %s: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s catalog: %w", format, err)
	}
	return nil
}

func encodeJSON(c Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func encodeYAML(c Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}

func encodeTOML(c Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeCUE(c Catalog) ([]byte, error) {
	return cueutil.Encode(c)
}

func encodeMarkdown(c Catalog) ([]byte, error) {
	var buf bytes.Buffer
	WriteCatalogMarkdown(&buf, c)
	return buf.Bytes(), nil
}
