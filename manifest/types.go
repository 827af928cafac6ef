// Package manifest loads and validates the job manifest: the list of
// import jobs an orchestrator runs, each naming an input glob, a layout
// file, a parse mode, and the target entity type.
package manifest

import "github.com/cobolimport/flatfileimport/layout"

// Mode selects whether a job's lines are parsed flat (ParseSingle) or into
// a parent-plus-children graph (ParseGraph).
type Mode string

const (
	ModeSingle Mode = "single"
	ModeGraph  Mode = "graph"
)

// Job describes one import job: which files to read, which layout to
// apply, and which entity type to parse each line into.
type Job struct {
	Name         string `yaml:"name"`
	InputGlob    string `yaml:"inputGlob"`
	LayoutPath   string `yaml:"layoutPath"`
	Mode         Mode   `yaml:"mode"`
	TargetEntity string `yaml:"targetEntity"`
	SourceSystem string `yaml:"sourceSystem"`
	BatchID      string `yaml:"batchId"`
}

// Manifest is the top-level list of jobs an orchestrator run executes.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Layouts resolves and validates every job's layout file, returning a map
// keyed by LayoutPath. Callers load layouts once per manifest and pass the
// relevant entry into fwparse.ParseSingle/ParseGraph per line.
func (m Manifest) Layouts() (map[string]layout.Layout, error) {
	result := make(map[string]layout.Layout, len(m.Jobs))
	for _, j := range m.Jobs {
		if _, ok := result[j.LayoutPath]; ok {
			continue
		}
		l, err := layout.Load(j.LayoutPath)
		if err != nil {
			return nil, err
		}
		result[j.LayoutPath] = l
	}
	return result, nil
}
