package template

import (
	"encoding/json"
	"strings"

	"github.com/flosch/pongo2/v6"
	"gopkg.in/yaml.v3"
)

func init() {
	if err := pongo2.RegisterFilter("to_yaml", filterToYAML); err != nil {
		panic(err)
	}
	if err := pongo2.RegisterFilter("to_json", filterToJSON); err != nil {
		panic(err)
	}
}

func filterToYAML(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	data, err := yaml.Marshal(in.Interface())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:to_yaml", OrigError: err}
	}
	return pongo2.AsSafeValue(strings.TrimRight(string(data), "\n")), nil
}

func filterToJSON(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	data, err := json.Marshal(in.Interface())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:to_json", OrigError: err}
	}
	return pongo2.AsSafeValue(string(data)), nil
}
