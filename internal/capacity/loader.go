package capacity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Source column order for capacity sheets:
// channel type | slab thickness | top edge | bottom edge | centres | max tension | max shear | util factor
// The first four cells are only populated on the first row of a product
// block and inherit forward until the next block header resets them.

// ParseRows builds a Table from raw sheet rows, applying the block
// header-inheritance rule. Malformed rows are skipped and reported in the
// returned warnings, never a hard failure.
func ParseRows(rows [][]string, log *zap.Logger) (*Table, []string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var (
		specs    []ChannelSpec
		warnings []string

		curChannel    string
		curSlab       int
		curTopEdge    float64
		curBottomEdge float64
	)
	skip := func(i int, reason string) {
		w := fmt.Sprintf("capacity row %d skipped: %s", i+1, reason)
		warnings = append(warnings, w)
		log.Warn("capacity row skipped", zap.Int("row", i+1), zap.String("reason", reason))
	}

	for i, row := range rows {
		if i == 0 && looksLikeHeading(row) {
			continue
		}
		if isBlank(row) {
			continue
		}
		if len(row) < 7 {
			skip(i, "too few cells")
			continue
		}

		// Block header cells reset the inherited context when present.
		if s := strings.TrimSpace(cell(row, 0)); s != "" {
			curChannel = s
			curSlab = 0
			curTopEdge, curBottomEdge = 0, 0
		}
		if s := strings.TrimSpace(cell(row, 1)); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				skip(i, "bad slab thickness "+s)
				continue
			}
			curSlab = v
		}
		if s := strings.TrimSpace(cell(row, 2)); s != "" {
			v, err := toFloat(s)
			if err != nil {
				skip(i, "bad top edge "+s)
				continue
			}
			curTopEdge = v
		}
		if s := strings.TrimSpace(cell(row, 3)); s != "" {
			v, err := toFloat(s)
			if err != nil {
				skip(i, "bad bottom edge "+s)
				continue
			}
			curBottomEdge = v
		}

		if curChannel == "" || curSlab == 0 {
			skip(i, "row before any block header")
			continue
		}

		centres, err := strconv.Atoi(strings.TrimSpace(cell(row, 4)))
		if err != nil {
			skip(i, "bad centres "+cell(row, 4))
			continue
		}
		tension, err := toFloat(cell(row, 5))
		if err != nil {
			skip(i, "bad tension "+cell(row, 5))
			continue
		}
		shear, err := toFloat(cell(row, 6))
		if err != nil {
			skip(i, "bad shear "+cell(row, 6))
			continue
		}
		util := 1.0
		if s := strings.TrimSpace(cell(row, 7)); s != "" {
			v, err := toFloat(s)
			if err != nil {
				skip(i, "bad utilization factor "+s)
				continue
			}
			util = v
		}

		specs = append(specs, ChannelSpec{
			ChannelType:       curChannel,
			SlabThicknessMM:   curSlab,
			BracketCentresMM:  centres,
			TopEdgeMM:         curTopEdge,
			BottomEdgeMM:      curBottomEdge,
			MaxTensionKN:      tension,
			MaxShearKN:        shear,
			UtilizationFactor: util,
		})
	}
	if len(specs) == 0 {
		return nil, warnings, fmt.Errorf("no usable capacity rows")
	}
	return New(specs, log), warnings, nil
}

// LoadWorkbook reads the first sheet of a capacity workbook.
func LoadWorkbook(path string, log *zap.Logger) (*Table, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open capacity workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read capacity sheet %q: %w", sheet, err)
	}
	return ParseRows(rows, log)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func looksLikeHeading(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := toFloat(cell(row, 5))
	return err != nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
