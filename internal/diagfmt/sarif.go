package diagfmt

import (
	"io"
	"path/filepath"

	"lint381/internal/diag"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name,omitempty"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifInvocation struct {
	ExecutionSuccessful        bool                `json:"executionSuccessful"`
	Arguments                  []string            `json:"arguments,omitempty"`
	ToolExecutionNotifications []sarifNotification `json:"toolExecutionNotifications,omitempty"`
}

type sarifNotification struct {
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex *int            `json:"ruleIndex,omitempty"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

// sarifRegion columns are one-based; EndColumn points one past the last character.
type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

func sarifLevel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// Sarif форматирует диагностики в SARIF формат (v2.1.0)
func Sarif(w io.Writer, reports []FileReport, meta SarifRunMeta) error {
	return encode(w, buildSarif(reports, meta), false)
}

func buildSarif(reports []FileReport, meta SarifRunMeta) sarifLog {
	name := meta.ToolName
	if name == "" {
		name = "lint381"
	}
	driver := sarifDriver{Name: name, Version: meta.ToolVersion, InformationURI: meta.InformationURI}
	ruleIndex := make(map[string]int, len(meta.Rules))
	for i, m := range meta.Rules {
		ruleIndex[m.ID] = i
		driver.Rules = append(driver.Rules, sarifRule{ID: m.ID, Name: m.Name, ShortDescription: sarifMessage{Text: m.Summary}})
	}

	run := sarifRun{
		Tool:    sarifTool{Driver: driver},
		Results: []sarifResult{},
	}
	inv := sarifInvocation{ExecutionSuccessful: true, Arguments: meta.InvocationArgs}

	for _, r := range reports {
		uri := filepath.ToSlash(displayPath(r, meta.PathMode, meta.BaseDir))
		if r.Err != nil {
			inv.ExecutionSuccessful = false
			pos, msg, ok := failurePosition(r.Err)
			note := sarifNotification{Level: "error", Message: sarifMessage{Text: msg}}
			loc := sarifLocation{PhysicalLocation: sarifPhysicalLocation{ArtifactLocation: sarifArtifactLocation{URI: uri}}}
			if ok {
				loc.PhysicalLocation.Region = &sarifRegion{StartLine: pos.Row + 1, StartColumn: pos.Column + 1}
			}
			note.Locations = []sarifLocation{loc}
			inv.ToolExecutionNotifications = append(inv.ToolExecutionNotifications, note)
			continue
		}
		for _, d := range r.Diagnostics {
			start, end := d.Start(), d.End()
			res := sarifResult{
				RuleID:  d.Rule,
				Level:   sarifLevel(d.Severity),
				Message: sarifMessage{Text: d.Message},
				Locations: []sarifLocation{{PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: uri},
					Region: &sarifRegion{
						StartLine:   start.Row + 1,
						StartColumn: start.Column + 1,
						EndLine:     end.Row + 1,
						EndColumn:   end.Column + 2,
					},
				}}},
			}
			if idx, ok := ruleIndex[d.Rule]; ok {
				res.RuleIndex = &idx
			}
			run.Results = append(run.Results, res)
		}
	}
	run.Invocations = []sarifInvocation{inv}
	return sarifLog{Version: sarifVersion, Schema: sarifSchema, Runs: []sarifRun{run}}
}
