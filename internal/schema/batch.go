package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type InvalidLog struct {
	Path   string
	Reason string
}

// BatchResult partitions a folder of candidate logs. Warning is set when the
// folder held no candidates at all; that situation is caller-visible but not
// an error.
type BatchResult struct {
	Valid   []string
	Invalid []InvalidLog
	Warning string
}

// ValidateFolder validates every *.json file in dir independently, in
// lexicographic order. One bad file never hides the others: each failure is
// recorded with its reason and validation continues.
func ValidateFolder(dir string) BatchResult {
	var res BatchResult

	info, err := os.Stat(dir)
	if err != nil {
		res.Invalid = append(res.Invalid, InvalidLog{Path: dir, Reason: "folder does not exist"})
		return res
	}
	if !info.IsDir() {
		res.Invalid = append(res.Invalid, InvalidLog{Path: dir, Reason: "path is not a folder"})
		return res
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		res.Invalid = append(res.Invalid, InvalidLog{Path: dir, Reason: fmt.Sprintf("cannot list folder: %v", err)})
		return res
	}
	sort.Strings(files)

	if len(files) == 0 {
		res.Warning = fmt.Sprintf("no JSON log files found in %q", dir)
		return res
	}

	for _, path := range files {
		if err := ValidateLogFile(path); err != nil {
			res.Invalid = append(res.Invalid, InvalidLog{Path: path, Reason: err.Error()})
		} else {
			res.Valid = append(res.Valid, path)
		}
	}
	return res
}

// RenderBatchReport formats a BatchResult as a readable validation summary.
func RenderBatchReport(res BatchResult) string {
	total := len(res.Valid) + len(res.Invalid)
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("VALIDATION REPORT - AI EXECUTION COACH\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Total files analyzed: %d\n", total)
	fmt.Fprintf(&b, "Valid files: %d\n", len(res.Valid))
	fmt.Fprintf(&b, "Invalid files: %d\n", len(res.Invalid))
	if len(res.Valid) > 0 {
		fmt.Fprintf(&b, "Success rate: %.1f%%\n", float64(len(res.Valid))/float64(total)*100)
	}
	if res.Warning != "" {
		fmt.Fprintf(&b, "Warning: %s\n", res.Warning)
	}

	if len(res.Valid) > 0 {
		b.WriteString("\n" + thin + "\n")
		b.WriteString("VALID FILES (ready for analysis)\n")
		b.WriteString(thin + "\n")
		for _, path := range res.Valid {
			fmt.Fprintf(&b, "  ✓ %s\n", filepath.Base(path))
		}
	}

	if len(res.Invalid) > 0 {
		b.WriteString("\n" + thin + "\n")
		b.WriteString("INVALID FILES (need correction)\n")
		b.WriteString(thin + "\n")
		for _, item := range res.Invalid {
			fmt.Fprintf(&b, "  ✗ %s\n", filepath.Base(item.Path))
			fmt.Fprintf(&b, "      error: %s\n", item.Reason)
		}
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}
