package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintTable(t *testing.T) {
	buf := new(bytes.Buffer)
	printTable(buf)
	output := buf.String()

	for _, exp := range []string{"Code", "Carbon", "Nitrogen", "Sulfur", "Weight"} {
		if !strings.Contains(output, exp) {
			t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, output)
		}
	}
	// 20 residue rows plus the header line.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 21 {
		t.Errorf("expected 21 lines (header + 20 residues), got %d", len(lines))
	}
	if !strings.Contains(output, "121.16") {
		t.Errorf("expected cysteine weight 121.16 in output:\n%s", output)
	}
}

func TestPrintTableQuiet(t *testing.T) {
	tableQuiet = true
	defer func() { tableQuiet = false }()

	buf := new(bytes.Buffer)
	printTable(buf)
	output := buf.String()

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 20 {
		t.Errorf("expected 20 residue codes, got %d:\n%s", len(lines), output)
	}
	if lines[0] != "A" || lines[len(lines)-1] != "Y" {
		t.Errorf("codes should be sorted A..Y, got first=%q last=%q", lines[0], lines[len(lines)-1])
	}
	if strings.Contains(output, "Weight") {
		t.Errorf("quiet output should not contain the header:\n%s", output)
	}
}

func TestVersionCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	versionCmd.Run(versionCmd, nil)

	output := buf.String()
	for _, exp := range []string{"astur", "commit:", "built:"} {
		if !strings.Contains(output, exp) {
			t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, output)
		}
	}
}
