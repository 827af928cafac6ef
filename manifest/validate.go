package manifest

import "github.com/cobolimport/flatfileimport/layout"

// Validate enforces the structural rules spec.md 6 requires of every job:
// non-empty name/glob/layout/mode, mode membership, and entity presence
// appropriate to the job's mode.
func Validate(m Manifest) error {
	var errs layout.ConfigError

	if len(m.Jobs) == 0 {
		errs.Add("manifest must declare at least one job")
	}

	seen := make(map[string]bool, len(m.Jobs))
	for i, j := range m.Jobs {
		if j.Name == "" {
			errs.Add("jobs[%d]: name must not be empty", i)
		} else if seen[j.Name] {
			errs.Add("jobs[%d]: duplicate job name %q", i, j.Name)
		} else {
			seen[j.Name] = true
		}
		if j.InputGlob == "" {
			errs.Add("jobs[%d] (%s): inputGlob must not be empty", i, j.Name)
		}
		if j.LayoutPath == "" {
			errs.Add("jobs[%d] (%s): layoutPath must not be empty", i, j.Name)
		}
		switch j.Mode {
		case ModeSingle, ModeGraph:
		case "":
			errs.Add("jobs[%d] (%s): mode must not be empty", i, j.Name)
		default:
			errs.Add("jobs[%d] (%s): unknown mode %q", i, j.Name, j.Mode)
		}
		if j.TargetEntity == "" {
			errs.Add("jobs[%d] (%s): targetEntity must not be empty", i, j.Name)
		}
	}

	return errs.AsError()
}
