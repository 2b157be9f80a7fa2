// Package models defines data structures for equipment inventory extraction.
package models

// Canonical equipment types.
const (
	TypeDozer       = "DOZER"
	TypeWheelLoader = "WHEEL LOADER"
)

// Record field names, in output order.
const (
	FieldEquipmentType  = "equipmentType"
	FieldMake           = "make"
	FieldModel          = "model"
	FieldPlateNumber    = "plateNumber"
	FieldAssetNumber    = "assetNumber"
	FieldNewAssetNumber = "newAssetNumber"
	FieldSerialNumber   = "serialNumber"
	FieldLocation       = "location"
)

// RecordFields lists every EquipmentRecord field in output order.
var RecordFields = []string{
	FieldEquipmentType,
	FieldMake,
	FieldModel,
	FieldPlateNumber,
	FieldAssetNumber,
	FieldNewAssetNumber,
	FieldSerialNumber,
	FieldLocation,
}

// EquipmentRecord is the canonical form of one inventory row.
// Every field is always present; absent data is the empty string.
type EquipmentRecord struct {
	// EquipmentType is one of TypeDozer or TypeWheelLoader.
	EquipmentType string `json:"equipmentType"`
	// Make is the manufacturer (e.g., CAT, KOMATSU).
	Make string `json:"make"`
	// Model is the manufacturer model code.
	Model string `json:"model"`
	// PlateNumber is the registration plate.
	PlateNumber string `json:"plateNumber"`
	// AssetNumber is the legacy asset number.
	AssetNumber string `json:"assetNumber"`
	// NewAssetNumber is the asset number under the current scheme.
	NewAssetNumber string `json:"newAssetNumber"`
	// SerialNumber is the machine serial number.
	SerialNumber string `json:"serialNumber"`
	// Location is the current site of the machine.
	Location string `json:"location"`
}

// Values returns the record fields in RecordFields order.
func (r EquipmentRecord) Values() []string {
	return []string{
		r.EquipmentType,
		r.Make,
		r.Model,
		r.PlateNumber,
		r.AssetNumber,
		r.NewAssetNumber,
		r.SerialNumber,
		r.Location,
	}
}
