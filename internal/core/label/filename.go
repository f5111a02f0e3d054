package label

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the compact timestamp embedded in generated file names.
const TimestampLayout = "20060102150405"

// filenameReplacer maps characters that are reserved on common filesystems
// to underscores.
var filenameReplacer = strings.NewReplacer(
	`\`, "_",
	"/", "_",
	"*", "_",
	"?", "_",
	":", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeFilename replaces the characters \ / * ? : " < > | with
// underscores. All other characters pass through unchanged.
func SanitizeFilename(name string) string {
	return filenameReplacer.Replace(name)
}

// FileStem returns the extension-less file name for a label image:
//
//	barcode_<sanitizedSerial>_<YYYYMMDDHHMMSS>
//
// The renderer appends the format extension when it writes the file.
func FileStem(serialNumber string, at time.Time) string {
	return fmt.Sprintf("barcode_%s_%s", SanitizeFilename(serialNumber), at.Format(TimestampLayout))
}
