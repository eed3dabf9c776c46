package model

import "time"

// StepStatus is the outcome of a pipeline step.
type StepStatus string

// Step outcomes.
const (
	StepOK     StepStatus = "ok"
	StepFailed StepStatus = "failed"
)

// StepReport records a single command run.
type StepReport struct {
	Command  Command       `yaml:"command"`
	Status   StepStatus    `yaml:"status"`
	Duration time.Duration `yaml:"duration"`
	Error    string        `yaml:"error,omitempty"`
}

// CompileRecord is the persisted form of a CompileResult.
type CompileRecord struct {
	Source Path   `yaml:"source"`
	Output Path   `yaml:"output"`
	Error  string `yaml:"error,omitempty"`
}

// RunReport summarizes one dispatch.
type RunReport struct {
	Started  time.Time       `yaml:"started"`
	WorkDir  Path            `yaml:"workdir"`
	Steps    []StepReport    `yaml:"steps"`
	Compiled []CompileRecord `yaml:"compiled,omitempty"`
}

// Failed reports whether any step failed.
func (r RunReport) Failed() bool {
	for _, step := range r.Steps {
		if step.Status == StepFailed {
			return true
		}
	}

	return false
}

// NewCompileRecord converts a CompileResult for persistence.
func NewCompileRecord(result CompileResult) CompileRecord {
	record := CompileRecord{
		Source: result.File.Source,
		Output: result.File.Output,
	}

	if result.Err != nil {
		record.Error = result.Err.Error()
	}

	return record
}
