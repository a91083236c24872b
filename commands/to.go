package commands

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/anomius/nushell/core/codec"
	"github.com/anomius/nushell/core/diag"
	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/help"
	"github.com/anomius/nushell/core/signature"
	"github.com/anomius/nushell/core/value"
)

var toSignature = signature.Build("to").
	Desc("Convert table into an output format (based on subcommand, like csv, json, tsv, yaml).").
	In(signature.CategoryFormats).
	Ex("List the available formats", "to", nil)

// To lists its subcommands. It never reads its input.
var To = &SimpleCommand[struct{}]{
	Sig: toSignature,
	Callback: func(ctx *engine.Context, call *engine.Call, _ *struct{}, _ value.PipelineData) (value.PipelineData, error) {
		var scope help.Scope
		if ctx.Scope != nil {
			scope = ctx.Scope
		}
		return value.One(value.NewString(help.Full(toSignature, scope), diag.Unknown)), nil
	},
}

type toDelimitedArgs struct {
	NoHeaders bool `arg:"noheaders"`
}

// toDelimited builds a command that writes tables as delimited text.
func toDelimited(sig *signature.Signature, delimiter rune, format string) *SimpleCommand[toDelimitedArgs] {
	return &SimpleCommand[toDelimitedArgs]{
		Sig: sig,
		Callback: func(ctx *engine.Context, call *engine.Call, args *toDelimitedArgs, input value.PipelineData) (value.PipelineData, error) {
			records, err := tableInput(input, format)
			if err != nil {
				return value.PipelineData{}, err
			}
			text, err := codec.ToDelimited(records, delimiter, !args.NoHeaders)
			if err != nil {
				return value.PipelineData{}, diag.Wrap(err,
					fmt.Sprintf("Could not convert to %s", format), "", call.Head)
			}
			return value.One(value.NewString(text, call.Head)), nil
		},
	}
}

// tableInput collects input that is a record or a list of records.
func tableInput(input value.PipelineData, format string) ([]value.Record, error) {
	unsupported := func(v value.Value) error {
		return diag.Labeled("Unsupported input",
			fmt.Sprintf("%s cannot be converted to %s, expected a table or record", v.TypeName(), format),
			v.Span())
	}

	switch v := input.IntoValue().(type) {
	case value.Record:
		return []value.Record{v}, nil
	case value.List:
		records := make([]value.Record, 0, len(v.Vals))
		for _, elem := range v.Vals {
			rec, ok := elem.(value.Record)
			if !ok {
				return nil, unsupported(elem)
			}
			records = append(records, rec)
		}
		return records, nil
	case value.Nothing:
		return nil, nil
	default:
		return nil, unsupported(v)
	}
}

// ToCSV implements to csv.
var ToCSV = toDelimited(
	signature.Build("to csv").
		Desc("Convert table into .csv text.").
		Flag("noheaders", 'n', "do not output the column names as the first row").
		In(signature.CategoryFormats).
		Ex("Round trip a headerless table", "seq char a b | from csv -n | to csv",
			value.NewString("Column1\na\nb\n", diag.Unknown)),
	',', "CSV")

// ToTSV implements to tsv.
var ToTSV = toDelimited(
	signature.Build("to tsv").
		Desc("Convert table into .tsv text.").
		Flag("noheaders", 'n', "do not output the column names as the first row").
		In(signature.CategoryFormats).
		Ex("Write rows without the header", "seq char a b | from tsv -n | to tsv -n",
			value.NewString("a\nb\n", diag.Unknown)),
	'\t', "TSV")

type toJSONArgs struct {
	Raw bool `arg:"raw"`
}

// ToJSON implements to json.
var ToJSON = &SimpleCommand[toJSONArgs]{
	Sig: signature.Build("to json").
		Desc("Converts table data into JSON text.").
		Flag("raw", 'r', "remove all of the whitespace").
		In(signature.CategoryFormats).
		Ex("Outputs a compact JSON string", "seq char a c | to json -r",
			value.NewString(`["a","b","c"]`, diag.Unknown)),
	Callback: func(ctx *engine.Context, call *engine.Call, args *toJSONArgs, input value.PipelineData) (value.PipelineData, error) {
		v := input.IntoValue()

		var out []byte
		var err error
		if args.Raw {
			out, err = json.Marshal(v)
		} else {
			out, err = json.MarshalIndent(v, "", "  ")
		}
		if err != nil {
			return value.PipelineData{}, diag.Wrap(err, "Could not convert to JSON", "", call.Head)
		}
		return value.One(value.NewString(string(out), call.Head)), nil
	},
}

// ToYAML implements to yaml. Record columns are written in sorted order.
var ToYAML = &SimpleCommand[struct{}]{
	Sig: signature.Build("to yaml").
		Desc("Convert table into .yaml/.yml text.").
		In(signature.CategoryFormats).
		Ex("Outputs a YAML list", "seq char a b | to yaml",
			value.NewString("- a\n- b\n", diag.Unknown)),
	Callback: func(ctx *engine.Context, call *engine.Call, _ *struct{}, input value.PipelineData) (value.PipelineData, error) {
		out, err := json.Marshal(input.IntoValue())
		if err == nil {
			out, err = yaml.JSONToYAML(out)
		}
		if err != nil {
			return value.PipelineData{}, diag.Wrap(err, "Could not convert to YAML", "", call.Head)
		}
		return value.One(value.NewString(string(out), call.Head)), nil
	},
}

func init() {
	mustAddCmd(To)
	mustAddCmd(ToCSV)
	mustAddCmd(ToTSV)
	mustAddCmd(ToJSON)
	mustAddCmd(ToYAML)
}
