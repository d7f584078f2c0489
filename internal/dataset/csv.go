package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV loads a dataset from a local CSV file. The column at labelCol
// becomes the label; all other columns become features, in file order.
// hasHeader skips the first line if true.
func LoadCSV(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	numCols := len(records[startRow])
	if labelCol < 0 || labelCol >= numCols {
		return nil, fmt.Errorf("label column %d out of range (file has %d columns)", labelCol, numCols)
	}

	d := &Dataset{
		Points: make([][]float64, 0, len(records)-startRow),
		Labels: make([]float64, 0, len(records)-startRow),
	}

	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, fmt.Errorf("inconsistent number of columns at row %d", i)
		}

		point := make([]float64, 0, numCols-1)
		var label float64

		for j, valStr := range record {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", i, j, err)
			}
			if j == labelCol {
				label = val
			} else {
				point = append(point, val)
			}
		}

		d.Points = append(d.Points, point)
		d.Labels = append(d.Labels, label)
	}

	return d, nil
}
