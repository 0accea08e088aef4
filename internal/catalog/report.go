package catalog

// Report is the structured outcome of a run. The engine fills it in and
// the command layer decides how to display it.
type Report struct {
	Selected    map[string]string   `json:"selected"`
	Conflicting map[string][]string `json:"conflicting,omitempty"`
	Changes     map[string][]Change `json:"changes,omitempty"`
	ToolVersion string              `json:"toolVersion,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// NewReport assembles a report from a decision and an optional plan.
// Change logs are keyed by the manifest's workspace-relative path.
func NewReport(dec Decision, plan *Plan, warnings []string) Report {
	rep := Report{
		Selected:    dec.Selected,
		Conflicting: dec.Conflicting,
		Warnings:    warnings,
	}
	if plan == nil {
		return rep
	}
	rep.ToolVersion = plan.ToolVersion
	if len(plan.Edits) > 0 {
		rep.Changes = make(map[string][]Change, len(plan.Edits))
		for _, e := range plan.Edits {
			if len(e.Changes) > 0 {
				rep.Changes[e.Rel] = e.Changes
			}
		}
	}
	return rep
}
