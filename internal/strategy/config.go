package strategy

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ChartConfig is the HCL representation of a chart strategy file:
//
//	chart "conservative" {
//	  stand_on = 17
//	  rule {
//	    upcards  = [2, 3, 4, 5, 6]
//	    stand_on = 12
//	  }
//	}
type ChartConfig struct {
	Charts []ChartBlock `hcl:"chart,block"`
}

// ChartBlock defines one named chart
type ChartBlock struct {
	Name    string      `hcl:"name,label"`
	StandOn int         `hcl:"stand_on"`
	Rules   []RuleBlock `hcl:"rule,block"`
}

// RuleBlock overrides the stand threshold for specific dealer upcards
type RuleBlock struct {
	Upcards []int `hcl:"upcards"`
	StandOn int   `hcl:"stand_on"`
}

// LoadChart reads the first chart block from an HCL strategy file
func LoadChart(filename string) (*Chart, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse strategy file: %s", diags.Error())
	}

	var config ChartConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode strategy file: %s", diags.Error())
	}

	if len(config.Charts) == 0 {
		return nil, fmt.Errorf("strategy file %s contains no chart block", filename)
	}

	return buildChart(config.Charts[0])
}

func buildChart(block ChartBlock) (*Chart, error) {
	if block.StandOn < 4 || block.StandOn > 21 {
		return nil, fmt.Errorf("chart %q: stand_on %d out of range 4-21", block.Name, block.StandOn)
	}

	thresholds := make(map[int]int)
	for _, rule := range block.Rules {
		if rule.StandOn < 4 || rule.StandOn > 21 {
			return nil, fmt.Errorf("chart %q: rule stand_on %d out of range 4-21", block.Name, rule.StandOn)
		}
		for _, upcard := range rule.Upcards {
			if upcard < 2 || upcard > 11 {
				return nil, fmt.Errorf("chart %q: upcard %d out of range 2-11", block.Name, upcard)
			}
			thresholds[upcard] = rule.StandOn
		}
	}

	return NewChart(block.StandOn, thresholds), nil
}
