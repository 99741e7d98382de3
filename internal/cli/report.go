package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eulerpath/eulerian"
)

// Messages of the text format.
const (
	msgNoWalk       = "An eulerian path does not exist."
	msgTooManyOdd   = "More than two vertices with uneven degree."
	msgZeroDegree   = "All vertices with zero degree."
	msgDisconnected = "The graph is disconnected."
)

// report is the structured form of a solve result.
type report struct {
	Outcome        string `json:"outcome" yaml:"outcome"`
	Classification string `json:"classification" yaml:"classification"`
	Exists         bool   `json:"exists" yaml:"exists"`
	Closed         bool   `json:"closed" yaml:"closed"`
	Vertices       []int  `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Components     int    `json:"components" yaml:"components"`
	SubCircuits    int    `json:"sub_circuits" yaml:"sub_circuits"`
	Merges         int    `json:"merges" yaml:"merges"`
}

func newReport(sol eulerian.Solution) report {
	return report{
		Outcome:        sol.Outcome.String(),
		Classification: sol.Classification.String(),
		Exists:         sol.Exists(),
		Closed:         sol.Closed(),
		Vertices:       sol.Vertices,
		Components:     sol.Components,
		SubCircuits:    sol.SubCircuits,
		Merges:         sol.Merges,
	}
}

// writeSolution prints sol to w in format.
func writeSolution(w io.Writer, sol eulerian.Solution, format, separator string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(sol))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(sol)); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		return writeText(w, sol, separator)
	default:
		return validateFormat(format)
	}
}

// writeText prints the walk on one line, or the no-walk message and reason.
func writeText(w io.Writer, sol eulerian.Solution, separator string) error {
	var err error
	switch sol.Outcome {
	case eulerian.OutcomeCycle, eulerian.OutcomePath:
		_, err = fmt.Fprintln(w, eulerian.Join(sol.Vertices, separator))
	case eulerian.OutcomeTooManyOdd:
		_, err = fmt.Fprintf(w, "%s\n%s\n", msgNoWalk, msgTooManyOdd)
	case eulerian.OutcomeZeroDegree:
		_, err = fmt.Fprintf(w, "%s\n%s\n", msgNoWalk, msgZeroDegree)
	case eulerian.OutcomeDisconnected:
		_, err = fmt.Fprintf(w, "%s\n%s\n", msgNoWalk, msgDisconnected)
	default:
		err = fmt.Errorf("unknown outcome %s", sol.Outcome)
	}
	return err
}
