package item

import "campus-lost-found/internal/model"

// StepState is how a status step renders on the detail timeline.
type StepState string

const (
	StepComplete StepState = "complete"
	StepCurrent  StepState = "current"
	StepPending  StepState = "pending"
)

type ProgressStep struct {
	Status model.ItemStatus
	Label  string
	State  StepState
}

// Progress is the registered -> analyzing -> returned timeline of an item.
type Progress struct {
	Steps   []ProgressStep
	Percent int
}

var statusLabels = []struct {
	status model.ItemStatus
	label  string
}{
	{model.ItemStatusRegistered, "Registrado"},
	{model.ItemStatusAnalyzing, "Em Analise/Aguardando"},
	{model.ItemStatusReturned, "Devolvido"},
}

// StatusLabel returns the display label of a canonical status.
func StatusLabel(s model.ItemStatus) string {
	for _, sl := range statusLabels {
		if sl.status == s {
			return sl.label
		}
	}
	return string(s)
}

// BuildProgress computes the timeline for the given status.
func BuildProgress(status model.ItemStatus) Progress {
	steps := make([]ProgressStep, 0, len(statusLabels))
	for _, sl := range statusLabels {
		steps = append(steps, ProgressStep{
			Status: sl.status,
			Label:  sl.label,
			State:  stepState(status, sl.status),
		})
	}

	percent := 0
	switch status {
	case model.ItemStatusAnalyzing:
		percent = 50
	case model.ItemStatusReturned:
		percent = 100
	}

	return Progress{Steps: steps, Percent: percent}
}

func stepState(current, step model.ItemStatus) StepState {
	switch current {
	case model.ItemStatusRegistered:
		if step == model.ItemStatusRegistered {
			return StepComplete
		}
		return StepPending
	case model.ItemStatusAnalyzing:
		switch step {
		case model.ItemStatusRegistered:
			return StepComplete
		case model.ItemStatusAnalyzing:
			return StepCurrent
		}
		return StepPending
	case model.ItemStatusReturned:
		return StepComplete
	}
	return StepPending
}
