package commands

import (
	"github.com/anomius/nushell/core/codec"
	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/signature"
	"github.com/anomius/nushell/core/value"
)

type fromDelimitedArgs struct {
	NoHeaders bool `arg:"noheaders"`
}

// fromDelimited builds a command that parses its input with a fixed
// delimiter and format name.
func fromDelimited(sig *signature.Signature, delimiter rune, format string) *SimpleCommand[fromDelimitedArgs] {
	return &SimpleCommand[fromDelimitedArgs]{
		Sig: sig,
		Callback: func(ctx *engine.Context, call *engine.Call, args *fromDelimitedArgs, input value.PipelineData) (value.PipelineData, error) {
			return codec.FromDelimited(args.NoHeaders, delimiter, format, input, call.Head)
		},
	}
}

// FromTSV implements from tsv.
var FromTSV = fromDelimited(
	signature.Build("from tsv").
		Desc("Parse text as .tsv and create table.").
		Flag("noheaders", 'n', "don't treat the first row as column names").
		In(signature.CategoryFormats).
		Ex("Parse characters as rows of a headerless table", "seq char a b | from tsv --noheaders",
			table([]string{"Column1"}, []string{"a"}, []string{"b"})).
		Ex("Use the first row as column names", "seq char a c | from tsv",
			table([]string{"a"}, []string{"b"}, []string{"c"})),
	'\t', "TSV")

// FromCSV implements from csv.
var FromCSV = fromDelimited(
	signature.Build("from csv").
		Desc("Parse text as .csv and create table.").
		Flag("noheaders", 'n', "don't treat the first row as column names").
		In(signature.CategoryFormats).
		Ex("Parse characters as rows of a headerless table", "seq char x y | from csv -n",
			table([]string{"Column1"}, []string{"x"}, []string{"y"})),
	',', "CSV")

func init() {
	mustAddCmd(FromTSV)
	mustAddCmd(FromCSV)
}
