// Package motion normalizes head-motion parameter rows into the canonical
// 12-column layout used by downstream regressor analysis.
package motion

import (
	"strconv"
	"strings"

	"github.com/tkarvine/motiontidy/internal/errors"
)

// NumFields is the number of scalar fields in a normalized motion record.
const NumFields = 12

// Columns holds the canonical output column names, in order.
var Columns = []string{
	"X", "Y", "Z",
	"RotX", "RotY", "RotZ",
	"XDt", "YDt", "ZDt",
	"RotXDt", "RotYDt", "RotZDt",
}

// sourceColumns maps each canonical field to the column name the upstream
// pipeline emits, in canonical order.
var sourceColumns = []string{
	"trans_x_mm", "trans_y_mm", "trans_z_mm",
	"rot_x_degrees", "rot_y_degrees", "rot_z_degrees",
	"trans_x_mm_dt", "trans_y_mm_dt", "trans_z_mm_dt",
	"rot_x_degrees_dt", "rot_y_degrees_dt", "rot_z_degrees_dt",
}

// Category sentinels for errors.Is checks.
var (
	// ErrMalformedRow reports a row that cannot be coerced to exactly
	// NumFields numeric values.
	ErrMalformedRow = errors.New(errors.NewStd("malformed motion row")).
			Component("motion").
			Category(errors.CategoryMalformedRow).
			Build()

	// ErrMissingColumns reports an input header lacking required source columns.
	ErrMissingColumns = errors.New(errors.NewStd("missing required columns")).
				Component("motion").
				Category(errors.CategoryMissingColumns).
				Build()

	// ErrMissingInput reports an expected input motion file that is absent.
	ErrMissingInput = errors.New(errors.NewStd("input motion file does not exist")).
			Component("motion").
			Category(errors.CategoryMissingInput).
			Build()

	// ErrOutputExists reports a destination file that already exists at write time.
	ErrOutputExists = errors.New(errors.NewStd("output file already exists")).
			Component("motion").
			Category(errors.CategoryOutputExists).
			Build()
)

// MotionRecord is one timepoint's motion parameters: translations in mm,
// rotations in degrees, and their temporal derivatives.
type MotionRecord struct {
	X, Y, Z                float64
	RotX, RotY, RotZ       float64
	XDt, YDt, ZDt          float64
	RotXDt, RotYDt, RotZDt float64
}

// Values returns the record's fields in canonical column order.
func (r MotionRecord) Values() [NumFields]float64 {
	return [NumFields]float64{
		r.X, r.Y, r.Z,
		r.RotX, r.RotY, r.RotZ,
		r.XDt, r.YDt, r.ZDt,
		r.RotXDt, r.RotYDt, r.RotZDt,
	}
}

func recordFromValues(v [NumFields]float64) MotionRecord {
	return MotionRecord{
		X: v[0], Y: v[1], Z: v[2],
		RotX: v[3], RotY: v[4], RotZ: v[5],
		XDt: v[6], YDt: v[7], ZDt: v[8],
		RotXDt: v[9], RotYDt: v[10], RotZDt: v[11],
	}
}

// Layout describes the column arrangement of one input file: how many
// columns its header declares and where the canonical fields live.
type Layout struct {
	columns int            // token count a well-formed data row must have
	indices [NumFields]int // row index of each canonical field
}

// Columns returns the number of columns the header declares.
func (l *Layout) Columns() int {
	return l.columns
}

// ParseLayout parses a tab-separated header line and locates the canonical
// fields. Both upstream source names (trans_x_mm, ...) and canonical names
// (X, Y, ...) are accepted, so the tool's own output can be re-read.
func ParseLayout(headerLine string) (*Layout, error) {
	names := strings.Split(strings.TrimRight(headerLine, "\r\n"), "\t")

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[strings.TrimSpace(name)] = i
	}

	layout := &Layout{columns: len(names)}
	var missing []string
	for i := 0; i < NumFields; i++ {
		if idx, ok := index[sourceColumns[i]]; ok {
			layout.indices[i] = idx
			continue
		}
		if idx, ok := index[Columns[i]]; ok {
			layout.indices[i] = idx
			continue
		}
		missing = append(missing, sourceColumns[i])
	}

	if len(missing) > 0 {
		return nil, errors.Newf("missing required columns: %s", strings.Join(missing, ", ")).
			Component("motion").
			Category(errors.CategoryMissingColumns).
			Context("missing", missing).
			Context("available", names).
			Build()
	}

	return layout, nil
}

// NormalizeRow coerces a raw row into a MotionRecord. A row whose token count
// already matches the layout is parsed directly. Otherwise the tokens are
// re-joined and re-split on the configured delimiter set; if the count still
// differs the row is unrecoverable. Numeric parse failures surface as the
// same error kind rather than defaulting to zero.
func NormalizeRow(tokens []string, layout *Layout, delims string) (MotionRecord, error) {
	if len(tokens) != layout.columns {
		tokens = resplit(tokens, delims)
		if len(tokens) != layout.columns {
			return MotionRecord{}, errors.Newf("row has %d fields after re-splitting, expected %d", len(tokens), layout.columns).
				Component("motion").
				Category(errors.CategoryMalformedRow).
				Context("row", strings.Join(tokens, "\t")).
				Build()
		}
	}

	var values [NumFields]float64
	for i, idx := range layout.indices {
		v, err := strconv.ParseFloat(strings.TrimSpace(tokens[idx]), 64)
		if err != nil {
			return MotionRecord{}, errors.Newf("field %s is not numeric: %q", Columns[i], tokens[idx]).
				Component("motion").
				Category(errors.CategoryMalformedRow).
				Context("column", Columns[i]).
				Context("row", strings.Join(tokens, "\t")).
				Build()
		}
		values[i] = v
	}

	return recordFromValues(values), nil
}

// resplit re-joins merged tokens and splits them again on the delimiter set,
// discarding empty tokens. This repairs rows where upstream delimiter
// emission merged several numeric values into one column.
func resplit(tokens []string, delims string) []string {
	joined := strings.Join(tokens, " ")
	return strings.FieldsFunc(joined, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}
