package suite

import (
	"fmt"
	"sort"

	"github.com/rexlang/rex/bio"
	"github.com/rexlang/rex/pattern"
)

// Factory builds one of the named built-in patterns.
type Factory func() *pattern.Node

// Builtin couples a pattern factory with a short description for listings.
type Builtin struct {
	Build Factory
	Doc   string
}

func digits() *pattern.Node {
	return pattern.Digit().OneOrMore()
}

func word() *pattern.Node {
	return pattern.WordChar().OneOrMore()
}

func integer() *pattern.Node {
	return pattern.Literal("-").Optional().Then(digits())
}

var builtins = map[string]Builtin{
	"digits":           {digits, "one or more decimal digits"},
	"word":             {word, "one or more word characters"},
	"integer":          {integer, "optionally signed whole number"},
	"dna":              {bio.DNA, "run of canonical DNA bases (ACGT)"},
	"dna-iupac":        {bio.DNAIUPAC, "DNA bases including IUPAC ambiguity codes"},
	"rna":              {bio.RNA, "run of RNA bases (ACGU)"},
	"protein":          {bio.Protein, "run of the 20 standard amino-acid codes"},
	"protein-extended": {bio.ProteinExtended, "amino acids including ambiguity codes"},
	"codon":            {bio.Codon, "exactly one DNA codon (three bases)"},
	"chromosome":       {bio.Chromosome, "human chromosome name (chr1..chr22, chrX, chrY, chrM, chrMT)"},
	"fasta-header":     {bio.FastaHeader, "FASTA description line (>...)"},
	"quality-string":   {bio.QualityString, "FASTQ phred+33 quality string"},
	"fasta-ext":        {bio.FastaExt, "FASTA file extension"},
	"fastq-ext":        {bio.FastqExt, "FASTQ file extension"},
	"alignment-ext":    {bio.AlignmentExt, "SAM/BAM/CRAM file extension"},
	"variant-ext":      {bio.VariantExt, "VCF/BCF file extension"},
}

// Lookup resolves a built-in pattern by name.
func Lookup(name string) (*pattern.Node, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
	return b.Build(), nil
}

// Names returns all built-in pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Doc returns the description of a built-in pattern, or "" if unknown.
func Doc(name string) string {
	return builtins[name].Doc
}
