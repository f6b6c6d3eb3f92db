package assembly

import "regexp"

// Tag is a metadata label attached to a Component row, such as a
// contamination marker, haplotype assignment, or chromosome class.
//
// The vocabulary is open: tags matching a recognized pattern carry meaning
// for downstream curation tooling, while unrecognized tags are preserved
// verbatim so newer labels round-trip through older versions of the tools.
type Tag string

// recognizedTagPatterns is the vocabulary of tags with known semantics:
// curation markers, haplotype labels (Hap1, Hap2, ...), sex-chromosome
// symbols with optional numbering (W, X1, Z2, ...) and B chromosomes.
var recognizedTagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Contaminant$`),
	regexp.MustCompile(`^Haplotig$`),
	regexp.MustCompile(`^Hap\d+$`),
	regexp.MustCompile(`^Painted$`),
	regexp.MustCompile(`^Unloc$`),
	regexp.MustCompile(`^Cut$`),
	regexp.MustCompile(`^[UVWXYZ]\d*$`),
	regexp.MustCompile(`^B\d+$`),
}

// Recognized reports whether the tag matches the known vocabulary.
// Unrecognized tags are still legal; they are carried verbatim and
// reported as warnings by the parsers.
func (t Tag) Recognized() bool {
	for _, re := range recognizedTagPatterns {
		if re.MatchString(string(t)) {
			return true
		}
	}
	return false
}
