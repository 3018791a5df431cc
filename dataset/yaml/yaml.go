/*
Package yaml parses attribute metadata from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/jayelm/decisiontrees/dataset"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadAttributes takes a slice of bytes with attribute metadata in YAML
and returns the attributes parsed from it or an error.

The YAML is expected to be an object with an attributes property
holding an ordered list of objects, each with a name and an optional
list of admissible values:

	attributes:
	  - name: Weather
	    values: [Sunny, Rainy]
	  - name: PlayTennis
	    values: ["Yes", "No"]

The list order matters: data sources with no inherent column order
adopt it as their schema order.
*/
func ReadAttributes(md []byte) ([]dataset.Attribute, error) {
	metadata := struct {
		Attributes []struct {
			Name   string        `yaml:"name"`
			Values []interface{} `yaml:"values"`
		} `yaml:"attributes"`
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml attributes: %v", err)
	}
	if len(metadata.Attributes) == 0 {
		return nil, fmt.Errorf("metadata has no attribute information")
	}
	attributes := make([]dataset.Attribute, 0, len(metadata.Attributes))
	seen := make(map[string]bool, len(metadata.Attributes))
	for _, a := range metadata.Attributes {
		if a.Name == "" {
			return nil, fmt.Errorf("attribute declaration without a name")
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("attribute %q declared more than once", a.Name)
		}
		seen[a.Name] = true
		values := make([]string, 0, len(a.Values))
		for _, v := range a.Values {
			values = append(values, fmt.Sprintf("%v", v))
		}
		attributes = append(attributes, dataset.Attribute{Name: a.Name, Values: values})
	}
	return attributes, nil
}

/*
ReadAttributesFromFile takes a filepath, reads its contents and uses
ReadAttributes to parse and return the declared attributes. An error
is returned if the file cannot be read or parsed.
*/
func ReadAttributesFromFile(filepath string) ([]dataset.Attribute, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading attributes yml file %s: %v", filepath, err)
	}
	attributes, err := ReadAttributes(md)
	if err != nil {
		err = fmt.Errorf("parsing attributes yml file %s: %v", filepath, err)
	}
	return attributes, err
}
