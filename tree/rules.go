package tree

import (
	"fmt"
	"sort"
	"strings"
)

/*
Condition is one step along a rule's path: an attribute and the value
it must take.
*/
type Condition struct {
	Attribute string
	Value     string
}

/*
Rule is a root-to-leaf path through a tree: the ordered conditions a
record must satisfy and the class value the leaf carries.
*/
type Rule struct {
	Conditions []Condition
	Label      string
	// Estimated carries the leaf's estimated diagnostic.
	Estimated bool
}

func (r Rule) String() string {
	conditions := make([]string, len(r.Conditions))
	for i, c := range r.Conditions {
		conditions[i] = fmt.Sprintf("%s=%s", c.Attribute, c.Value)
	}
	return fmt.Sprintf("%s -> %s", strings.Join(conditions, ", "), r.Label)
}

/*
Rules returns every root-to-leaf path of the subtree rooted at this
node, sorted by path length ascending and then lexicographically by
the sequence of values along the path. Each call recomputes the
listing from scratch.
*/
func (n *Node) Rules() []Rule {
	rules := n.collectRules(nil)
	sort.SliceStable(rules, func(i, j int) bool {
		ri, rj := rules[i], rules[j]
		if len(ri.Conditions) != len(rj.Conditions) {
			return len(ri.Conditions) < len(rj.Conditions)
		}
		for k := range ri.Conditions {
			if ri.Conditions[k].Value != rj.Conditions[k].Value {
				return ri.Conditions[k].Value < rj.Conditions[k].Value
			}
		}
		return false
	})
	return rules
}

func (n *Node) collectRules(path []Condition) []Rule {
	if n.Leaf {
		return []Rule{{
			Conditions: append([]Condition(nil), path...),
			Label:      n.Label,
			Estimated:  n.Diagnostics.Estimated,
		}}
	}
	var rules []Rule
	for _, c := range n.Children {
		step := make([]Condition, len(path), len(path)+1)
		copy(step, path)
		step = append(step, Condition{Attribute: n.Label, Value: c.ParentValue})
		rules = append(rules, c.collectRules(step)...)
	}
	return rules
}
