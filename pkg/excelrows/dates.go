package excelrows

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateFormatPattern matches number-format codes laid out as day/month/year
// groups, optionally followed by an hour:minute part, e.g. "m/d/yyyy",
// "dd/mm/yy" or "yyyy/mm/dd h:mm".
var dateFormatPattern = regexp.MustCompile(`(?i)^[dmy]{1,4}/[dmy]{1,4}/[dmy]{1,4}( h{1,2}:m{1,2}(:s{1,2})?)?$`)

// isDateFormat reports whether a number-format code should trigger date
// coercion. extra is the user-supplied format hint, matched verbatim.
func isDateFormat(format, extra string) bool {
	if format == "" {
		return false
	}
	if extra != "" && format == extra {
		return true
	}
	return dateFormatPattern.MatchString(format)
}

// coerceDate interprets a raw cell value as a serial date number in the
// 1900 date system and converts it to a timestamp. On error the caller
// keeps the raw value.
func coerceDate(value any) (time.Time, error) {
	var serial float64
	switch v := value.(type) {
	case float64:
		serial = v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("value is not numeric: %w", err)
		}
		serial = f
	default:
		return time.Time{}, fmt.Errorf("value of type %T is not numeric", value)
	}
	return excelize.ExcelDateToTime(serial, false)
}
