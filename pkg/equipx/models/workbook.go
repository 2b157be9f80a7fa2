package models

// InventoryData is the result of normalizing one inventory sheet.
type InventoryData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the records came from.
	SheetName string `json:"sheet_name"`
	// HeaderRow is the zero-based header row used.
	HeaderRow int `json:"header_row"`
	// Records are the emitted records in sheet order.
	Records []EquipmentRecord `json:"records"`
	// Stats summarizes skipped and emitted rows.
	Stats Stats `json:"stats"`
}
