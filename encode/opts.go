package encode

import "fmt"

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

func ParseFormat(v string) (Format, error) {
	switch v {
	case "yaml", "y":
		return YAMLFormat, nil
	case "json", "j":
		return JSONFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}

func (f Format) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "yaml"
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
