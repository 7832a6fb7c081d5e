package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
	"text/tabwriter"

	"github.com/omeyang/xipclass/pkg/ipclass/xclassify"
	"github.com/omeyang/xipclass/pkg/ipclass/xregistry"
)

// resultWriter 按输出格式写出分类结果。
type resultWriter interface {
	WriteResult(res xclassify.Result) error
	WriteError(ip string, err error) error
	Flush() error
}

func newResultWriter(w io.Writer, format string) resultWriter {
	if format == outputJSON {
		return &jsonResultWriter{enc: json.NewEncoder(w)}
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ADDRESS\tFAMILY\tBLOCK\tFLAGS")
	return &textResultWriter{tw: tw}
}

type textResultWriter struct {
	tw *tabwriter.Writer
}

func (t *textResultWriter) WriteResult(res xclassify.Result) error {
	block := "-"
	if res.Block != nil {
		block = res.Block.AddressBlock + " " + res.Block.Name
	}
	_, err := fmt.Fprintf(t.tw, "%s\t%s\t%s\t%s\n", res.IP, res.Version, block, strings.Join(resultFlags(res), ","))
	return err
}

func (t *textResultWriter) WriteError(ip string, err error) error {
	_, werr := fmt.Fprintf(t.tw, "%s\t-\terror: %v\t-\n", ip, err)
	return werr
}

func (t *textResultWriter) Flush() error {
	return t.tw.Flush()
}

// resultFlags 返回为 true 的谓词名称。
func resultFlags(res xclassify.Result) []string {
	var flags []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"special", res.Special},
		{"global", res.Global},
		{"loopback", res.Loopback},
		{"local", res.LocalNetwork},
		{"private", res.PrivateNetwork},
		{"multicast", res.Multicast},
		{"documentation", res.Documentation},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	if len(flags) == 0 {
		return []string{"-"}
	}
	return flags
}

type jsonResultWriter struct {
	enc *json.Encoder
}

func (j *jsonResultWriter) WriteResult(res xclassify.Result) error {
	return j.enc.Encode(res)
}

func (j *jsonResultWriter) WriteError(ip string, err error) error {
	return j.enc.Encode(struct {
		IP    string `json:"ip"`
		Error string `json:"error"`
	}{IP: ip, Error: err.Error()})
}

func (j *jsonResultWriter) Flush() error { return nil }

// writeBlocks 按匹配顺序输出注册表条目。
func writeBlocks(w io.Writer, format string, blocks iter.Seq[*xregistry.Block]) error {
	if format == outputJSON {
		list := make([]*xregistry.Block, 0)
		for b := range blocks {
			list = append(list, b)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BLOCK\tNAME\tTYPE\tGLOBAL\tACTIVE\tRFC")
	for b := range blocks {
		rfc := b.RFC
		if rfc == "" {
			rfc = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n",
			b.AddressBlock, b.Name, b.Type, b.GloballyReachable, b.Active(), rfc)
	}
	return tw.Flush()
}
