package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	objmask "github.com/reoring/objmask"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "filter":
		filterCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	case "fields":
		fieldsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "objmask CLI\n\nUsage:\n  objmask filter -mask mask.json [-yaml] < value.json\n  objmask check  -mask mask.json -path a.b.c\n  objmask fields -mask mask.json [-yaml] < value.json\n\nNotes:\n  - filter prints the masked value as JSON.\n  - check exits 0 when the path is granted and 1 when it is not.\n  - fields prints one masked-out dotted path per line.")
}

func filterCmd(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	var maskPath string
	var maskIsYAML bool
	fs.StringVar(&maskPath, "mask", "", "mask file (JSON, or YAML with -yaml)")
	fs.BoolVar(&maskIsYAML, "yaml", false, "decode the mask file as YAML")
	_ = fs.Parse(args)
	if maskPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	m := loadMask(maskPath, maskIsYAML)
	v := readValue(os.Stdin)
	out, err := json.Marshal(m.Filter(v))
	if err != nil {
		fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var maskPath, path string
	var maskIsYAML bool
	fs.StringVar(&maskPath, "mask", "", "mask file (JSON, or YAML with -yaml)")
	fs.StringVar(&path, "path", "", "dotted path to check")
	fs.BoolVar(&maskIsYAML, "yaml", false, "decode the mask file as YAML")
	_ = fs.Parse(args)
	if maskPath == "" || path == "" {
		fs.Usage()
		os.Exit(2)
	}
	m := loadMask(maskPath, maskIsYAML)
	if !m.CheckPath(path) {
		os.Exit(1)
	}
}

func fieldsCmd(args []string) {
	fs := flag.NewFlagSet("fields", flag.ExitOnError)
	var maskPath string
	var maskIsYAML bool
	fs.StringVar(&maskPath, "mask", "", "mask file (JSON, or YAML with -yaml)")
	fs.BoolVar(&maskIsYAML, "yaml", false, "decode the mask file as YAML")
	_ = fs.Parse(args)
	if maskPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	m := loadMask(maskPath, maskIsYAML)
	v := readValue(os.Stdin)
	fields := m.MaskedOutFields(v)
	if len(fields) > 0 {
		fmt.Println(strings.Join(fields, "\n"))
	}
}

func loadMask(path string, isYAML bool) *objmask.Mask {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("read mask: %v", err)
	}
	var m *objmask.Mask
	if isYAML {
		m, err = objmask.FromYAMLBytes(data)
	} else {
		m, err = objmask.FromJSONBytes(data)
	}
	if err != nil {
		fatalf("decode mask: %v", err)
	}
	if !m.Validate() {
		fatalf("mask %s is malformed: non-boolean leaf", path)
	}
	return m
}

func readValue(r io.Reader) any {
	data, err := io.ReadAll(r)
	if err != nil {
		fatalf("read value: %v", err)
	}
	v, err := objmask.DecodeJSONValue(data)
	if err != nil {
		fatalf("decode value: %v", err)
	}
	return v
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "objmask: "+format+"\n", args...)
	os.Exit(1)
}
