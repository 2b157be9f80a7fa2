package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fleetworks/equipx/pkg/equipx/models"
	"go.uber.org/zap"
)

// ErrMissingColumn indicates a required column is absent from the header.
var ErrMissingColumn = errors.New("required column missing")

// Reason explains why a row produced no record.
type Reason string

const (
	// ReasonNone means the row was emitted.
	ReasonNone Reason = ""
	// ReasonType means the equipment type is not in the filter.
	ReasonType Reason = "type"
	// ReasonIncomplete means make or model is empty and the completeness gate is on.
	ReasonIncomplete Reason = "incomplete"
	// ReasonExcluded means the asset number is on the exclusion list.
	ReasonExcluded Reason = "excluded"
)

// Config configures a Normalizer.
type Config struct {
	// Types are the accepted raw equipment type strings.
	Types []string
	// Columns maps record fields to column labels. Nil uses DefaultColumns.
	Columns map[string]string
	// RequireEssential skips rows whose make or model is empty.
	RequireEssential bool
	// ExcludeAssets lists asset numbers that are never emitted.
	ExcludeAssets []string
}

// Normalizer turns raw rows into EquipmentRecords.
type Normalizer struct {
	filter           TypeFilter
	columns          map[string]string
	requireEssential bool
	excluded         map[string]struct{}
	logger           *zap.Logger
}

// New creates a Normalizer. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) (*Normalizer, error) {
	columns, err := MergeColumns(cfg.Columns)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	excluded := make(map[string]struct{}, len(cfg.ExcludeAssets))
	for _, asset := range cfg.ExcludeAssets {
		if asset = strings.TrimSpace(asset); asset != "" {
			excluded[asset] = struct{}{}
		}
	}

	return &Normalizer{
		filter:           NewTypeFilter(cfg.Types...),
		columns:          columns,
		requireEssential: cfg.RequireEssential,
		excluded:         excluded,
		logger:           logger,
	}, nil
}

// TypeColumn returns the label of the equipment type column.
func (n *Normalizer) TypeColumn() string {
	return n.columns[models.FieldEquipmentType]
}

// Check verifies the header carries the equipment type column.
// Other columns are optional.
func (n *Normalizer) Check(h *models.Header) error {
	label := n.TypeColumn()
	if _, ok := h.Lookup(label); !ok {
		return fmt.Errorf("%w: %q", ErrMissingColumn, label)
	}
	return nil
}

// Normalize maps one row. A non-empty Reason means the row is skipped.
func (n *Normalizer) Normalize(row models.RawRow) (models.EquipmentRecord, Reason) {
	rawType := resolve(row, n.columns, models.FieldEquipmentType)
	if !n.filter.Match(rawType) {
		return models.EquipmentRecord{}, ReasonType
	}

	rec := models.EquipmentRecord{
		EquipmentType:  Canonicalize(rawType),
		Make:           resolve(row, n.columns, models.FieldMake),
		Model:          resolve(row, n.columns, models.FieldModel),
		PlateNumber:    resolve(row, n.columns, models.FieldPlateNumber),
		AssetNumber:    resolve(row, n.columns, models.FieldAssetNumber),
		NewAssetNumber: resolve(row, n.columns, models.FieldNewAssetNumber),
		SerialNumber:   resolve(row, n.columns, models.FieldSerialNumber),
		Location:       resolve(row, n.columns, models.FieldLocation),
	}

	if n.requireEssential && (rec.Make == "" || rec.Model == "") {
		return models.EquipmentRecord{}, ReasonIncomplete
	}
	if _, ok := n.excluded[rec.AssetNumber]; ok && rec.AssetNumber != "" {
		return models.EquipmentRecord{}, ReasonExcluded
	}
	return rec, ReasonNone
}

// NormalizeAll maps rows in order and counts the outcome of each.
// Blank rows are not counted.
func (n *Normalizer) NormalizeAll(rows []models.RawRow) ([]models.EquipmentRecord, models.Stats) {
	records := make([]models.EquipmentRecord, 0, len(rows))
	var stats models.Stats

	for _, row := range rows {
		if row.IsEmpty() {
			continue
		}
		stats.Rows++

		rec, reason := n.Normalize(row)
		switch reason {
		case ReasonNone:
			stats.Emitted++
			records = append(records, rec)
			continue
		case ReasonType:
			stats.SkippedType++
		case ReasonIncomplete:
			stats.SkippedIncomplete++
		case ReasonExcluded:
			stats.Excluded++
		}
		n.logger.Debug("row skipped",
			zap.Int("row", row.Index),
			zap.String("reason", string(reason)))
	}

	return records, stats
}
