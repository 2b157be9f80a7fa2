// Package output renders extraction results.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/fleetworks/equipx/pkg/equipx/models"
)

// ToJSON renders records as a JSON array. Keys follow EquipmentRecord field
// order and an empty result renders as [].
func ToJSON(records []models.EquipmentRecord, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.EquipmentRecord{}
	}
	return marshal(records, pretty)
}

// InventoryToJSON renders the full result, including stats.
func InventoryToJSON(inv *models.InventoryData, pretty bool) ([]byte, error) {
	view := *inv
	if view.Records == nil {
		view.Records = []models.EquipmentRecord{}
	}
	return marshal(view, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
