package models

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Class is the semantic bucket a section's bytes are counted under.
type Class int

const (
	ClassCode Class = iota
	ClassROData
	ClassData
	ClassBSS
	ClassOther
	ClassIgnored
)

var classNames = map[string]Class{
	"code":   ClassCode,
	"rodata": ClassROData,
	"data":   ClassData,
	"bss":    ClassBSS,
	"other":  ClassOther,
	"ignore": ClassIgnored,
}

func (c Class) String() string {
	for name, class := range classNames {
		if class == c {
			return name
		}
	}
	return "other"
}

// Rule maps a section-name prefix to a class. Rules are checked in order;
// the first matching prefix wins.
type Rule struct {
	Prefix string
	Class  Class
}

type Rules []Rule

// DefaultRules is the conventional GNU ld section layout. Comment, debug
// and ARM attribute sections carry no target bytes and are not counted.
var DefaultRules = Rules{
	{".text", ClassCode},
	{".rodata", ClassROData},
	{".data", ClassData},
	{".bss", ClassBSS},
	{".comment", ClassIgnored},
	{".debug", ClassIgnored},
	{".ARM.attributes", ClassIgnored},
}

func (r Rules) Classify(section string) Class {
	for _, rule := range r {
		if strings.HasPrefix(section, rule.Prefix) {
			return rule.Class
		}
	}
	return ClassOther
}

type ruleSpec struct {
	Prefix string `yaml:"prefix"`
	Class  string `yaml:"class"`
}

type rulesFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

// LoadRules reads a classification rule set from a YAML file. Unlike the
// map report itself, the rules file is user-authored, so malformed input
// is an error rather than noise to skip.
func LoadRules(path string) (Rules, error) {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var rf rulesFile
	if err := yaml.Unmarshal(p, &rf); err != nil {
		return nil, errors.Wrapf(err, "parsing rules file %s", path)
	}
	if len(rf.Rules) == 0 {
		return nil, errors.Errorf("%s: no rules defined", path)
	}
	rules := make(Rules, 0, len(rf.Rules))
	for _, spec := range rf.Rules {
		if spec.Prefix == "" {
			return nil, errors.Errorf("%s: rule with empty prefix", path)
		}
		class, ok := classNames[spec.Class]
		if !ok {
			return nil, errors.Errorf("%s: unknown class %q for prefix %q", path, spec.Class, spec.Prefix)
		}
		rules = append(rules, Rule{Prefix: spec.Prefix, Class: class})
	}
	return rules, nil
}
