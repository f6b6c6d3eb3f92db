package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goldpath/goldpath/pkg/errors"
)

const testAGP = "scaffold_1\t1\t500\t1\tW\tctgA\t1\t500\t+\n" +
	"scaffold_1\t501\t700\t2\tU\t200\tscaffold\tyes\tproximity_ligation\n" +
	"scaffold_1\t701\t1000\t3\tW\tctgB\t701\t1000\t-\n"

const testTPF = "?\tctgA:1-500\tscaffold_1\tPLUS\n" +
	"GAP\tTYPE-2\t200\n" +
	"?\tctgB:701-1000\tscaffold_1\tPLUS\n"

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestASMFormatConvertsAGPToTPF(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "scaffolds.agp", testAGP)
	output := filepath.Join(dir, "scaffolds.tpf")

	cmd := NewASMFormatCommand()
	cmd.SetArgs([]string{"-i", input, "-o", output})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := "?\tctgA:1-500\tscaffold_1\tPLUS\n" +
		"GAP\tTYPE-2\t200\n" +
		"?\tctgB:701-1000\tscaffold_1\tMINUS\n"
	if string(data) != want {
		t.Errorf("output:\n%s\nwant:\n%s", data, want)
	}
}

func TestASMFormatConvertsTPFToAGP(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "scaffolds.tpf", testTPF)
	output := filepath.Join(dir, "scaffolds.agp")

	cmd := NewASMFormatCommand()
	cmd.SetArgs([]string{"-i", input, "-o", output})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	var rows []string
	for _, l := range lines {
		if !strings.HasPrefix(l, "#") {
			rows = append(rows, l)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("AGP rows = %d, want 3:\n%s", len(rows), data)
	}
	if rows[0] != "scaffold_1\t1\t500\t1\tW\tctgA\t1\t500\t+" {
		t.Errorf("row 1 = %q", rows[0])
	}
	if !strings.HasPrefix(rows[1], "scaffold_1\t501\t700\t2\tU\t200\tscaffold\tyes") {
		t.Errorf("row 2 = %q", rows[1])
	}
}

func TestASMFormatRefusesToClobber(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "scaffolds.agp", testAGP)
	output := writeTestFile(t, dir, "scaffolds.tpf", "existing\n")

	cmd := NewASMFormatCommand()
	cmd.SetArgs([]string{"-i", input, "-o", output})
	err := cmd.Execute()
	if !errors.Is(err, errors.ErrCodeFileExists) {
		t.Fatalf("error = %v, want FILE_EXISTS", err)
	}

	cmd = NewASMFormatCommand()
	cmd.SetArgs([]string{"-i", input, "-o", output, "--clobber"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("--clobber should overwrite: %v", err)
	}
}

func TestASMFormatStrictTags(t *testing.T) {
	dir := t.TempDir()
	agp := "scaffold_1\t1\t500\t1\tW\tctgA\t1\t500\t+\tNotATag\n"
	input := writeTestFile(t, dir, "scaffolds.agp", agp)

	cmd := NewASMFormatCommand()
	cmd.SetArgs([]string{"-i", input, "-o", filepath.Join(dir, "out.tpf"), "--strict-tags"})
	err := cmd.Execute()
	if !errors.Is(err, errors.ErrCodeUnknownTag) {
		t.Fatalf("error = %v, want UNKNOWN_TAG", err)
	}
}

func TestASMFormatConfigGapLength(t *testing.T) {
	dir := t.TempDir()
	// Gap row without a length: the configured default applies.
	tpf := "?\tctgA:1-500\tscaffold_1\tPLUS\n" +
		"GAP\tTYPE-2\n" +
		"?\tctgB:701-1000\tscaffold_1\tPLUS\n"
	input := writeTestFile(t, dir, "scaffolds.tpf", tpf)
	config := writeTestFile(t, dir, "gap.toml", "default_gap_length = 300\n")
	output := filepath.Join(dir, "out.agp")

	cmd := NewASMFormatCommand()
	cmd.SetArgs([]string{"-i", input, "-o", output, "--config", config})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\t501\t800\t2\tU\t300\t") {
		t.Errorf("gap row should use configured 300 base length:\n%s", data)
	}
}

func TestPretextToTPFRemaps(t *testing.T) {
	dir := t.TempDir()
	original := writeTestFile(t, dir, "original.tpf", testTPF)
	curated := writeTestFile(t, dir, "curated.agp",
		"chr1\t1\t1000\t1\tW\tscaffold_1\t1\t1000\t-\n")
	output := filepath.Join(dir, "curated.tpf")

	cmd := NewPretextToTPFCommand()
	cmd.SetArgs([]string{"-a", original, "-p", curated, "-o", output, "--stats"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := "?\tctgB:701-1000\tchr1\tMINUS\n" +
		"GAP\tTYPE-2\t200\n" +
		"?\tctgA:1-500\tchr1\tMINUS\n"
	if string(data) != want {
		t.Errorf("output:\n%s\nwant:\n%s", data, want)
	}
}

func TestPretextToTPFUnknownScaffold(t *testing.T) {
	dir := t.TempDir()
	original := writeTestFile(t, dir, "original.tpf", testTPF)
	curated := writeTestFile(t, dir, "curated.agp",
		"chr1\t1\t100\t1\tW\tscaffold_9\t1\t100\t+\n")

	cmd := NewPretextToTPFCommand()
	cmd.SetArgs([]string{"-a", original, "-p", curated, "-o", filepath.Join(dir, "out.tpf")})
	err := cmd.Execute()
	if !errors.Is(err, errors.ErrCodeUnknownScaffold) {
		t.Fatalf("error = %v, want UNKNOWN_SCAFFOLD", err)
	}
}

func TestPretextToTPFAGPOutput(t *testing.T) {
	dir := t.TempDir()
	original := writeTestFile(t, dir, "original.tpf", testTPF)
	curated := writeTestFile(t, dir, "curated.agp",
		"chr1\t1\t1000\t1\tW\tscaffold_1\t1\t1000\t+\n")
	output := filepath.Join(dir, "curated_out.agp")

	cmd := NewPretextToTPFCommand()
	cmd.SetArgs([]string{"-a", original, "-p", curated, "-o", output})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "chr1\t1\t500\t1\tW\tctgA\t1\t500\t+") {
		t.Errorf("expected AGP output when writing to .agp:\n%s", data)
	}
}
