package analyze

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// keywordFile is the on-disk shape of an industry table override.
type keywordFile struct {
	Industries []IndustryRule `yaml:"industries"`
}

// LoadIndustryTable reads an ordered industry keyword table from a YAML file.
// The file fully replaces the built-in table; order in the file is the
// classification tie-break order.
func LoadIndustryTable(path string) ([]IndustryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "analyze: read keyword file")
	}

	var kf keywordFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, eris.Wrap(err, "analyze: parse keyword file")
	}

	if len(kf.Industries) == 0 {
		return nil, eris.New("analyze: keyword file defines no industries")
	}
	for _, rule := range kf.Industries {
		if rule.Name == "" {
			return nil, eris.New("analyze: keyword rule missing name")
		}
		if len(rule.Keywords) == 0 {
			return nil, eris.Errorf("analyze: industry %q has no keywords", rule.Name)
		}
	}

	return kf.Industries, nil
}
