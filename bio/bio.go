// Package bio provides ready-made patterns for common bioinformatics text
// formats. Every factory returns a pre-built pattern tree and is a pure
// consumer of the pattern package's construction API.
package bio

import (
	"strconv"

	"github.com/rexlang/rex/pattern"
)

// Residue alphabets. The IUPAC sets include the ambiguity codes on top of
// the canonical residues.
const (
	dnaBases      = "ACGT"
	rnaBases      = "ACGU"
	dnaIUPAC      = "ACGTRYSWKMBDHVN"
	aminoAcids    = "ACDEFGHIKLMNPQRSTVWY"
	aminoExtended = "ACDEFGHIKLMNPQRSTVWYBXZJUO"
)

// all factories compose from fixed inputs, so construction cannot fail
func must(n *pattern.Node, err error) *pattern.Node {
	if err != nil {
		panic(err)
	}
	return n
}

// DNA matches a run of canonical DNA bases (ACGT).
func DNA() *pattern.Node {
	return pattern.CharClass(dnaBases).OneOrMore()
}

// DNAIUPAC matches a run of DNA bases including IUPAC ambiguity codes.
func DNAIUPAC() *pattern.Node {
	return pattern.CharClass(dnaIUPAC).OneOrMore()
}

// RNA matches a run of RNA bases (ACGU).
func RNA() *pattern.Node {
	return pattern.CharClass(rnaBases).OneOrMore()
}

// Protein matches a run of the twenty standard amino-acid codes.
func Protein() *pattern.Node {
	return pattern.CharClass(aminoAcids).OneOrMore()
}

// ProteinExtended matches amino-acid codes including the ambiguity and
// non-standard letters (B, X, Z, J, U, O).
func ProteinExtended() *pattern.Node {
	return pattern.CharClass(aminoExtended).OneOrMore()
}

// Codon matches exactly one DNA codon (three bases).
func Codon() *pattern.Node {
	return must(pattern.CharClass(dnaBases).Exactly(3))
}

// Chromosome matches a human chromosome name such as chr1, chr22, chrX or
// chrMT. The autosome numbers are enumerated rather than matched loosely so
// that chr23 or chr0 do not slip through.
func Chromosome() *pattern.Node {
	names := make([]string, 0, 26)
	for i := 1; i <= 22; i++ {
		names = append(names, strconv.Itoa(i))
	}
	names = append(names, "X", "Y", "MT", "M")
	return pattern.Literal("chr").Then(must(pattern.Either(names...)))
}

// FastaHeader matches a FASTA description line: a leading > followed by at
// least one character.
func FastaHeader() *pattern.Node {
	return pattern.StartOfLine().
		Then(pattern.Literal(">")).
		Then(pattern.AnyChar().OneOrMore())
}

// QualityString matches a FASTQ phred+33 quality string, whose symbols span
// the printable ASCII range from ! to ~.
func QualityString() *pattern.Node {
	return must(pattern.CharRange('!', '~')).OneOrMore()
}

// extension builds a trailing-extension pattern for the given suffixes.
func extension(suffixes ...string) *pattern.Node {
	return pattern.Literal(".").
		Then(must(pattern.Either(suffixes...))).
		Then(pattern.EndOfText())
}

// FastaExt matches FASTA file extensions at the end of a path.
func FastaExt() *pattern.Node {
	return extension("fasta", "fa", "fna", "ffn", "faa", "frn")
}

// FastqExt matches FASTQ file extensions at the end of a path.
func FastqExt() *pattern.Node {
	return extension("fastq", "fq")
}

// AlignmentExt matches alignment-file extensions (SAM/BAM/CRAM).
func AlignmentExt() *pattern.Node {
	return extension("sam", "bam", "cram")
}

// VariantExt matches variant-call file extensions (VCF/BCF), with or
// without gzip compression.
func VariantExt() *pattern.Node {
	return extension("vcf", "vcf.gz", "bcf")
}
