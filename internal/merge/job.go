package merge

import "craigmix/internal/scanner"

// FolderPlan previews what processing one folder would do. Produced by dry
// runs.
type FolderPlan struct {
	Folder     scanner.Folder
	FileCount  int
	OutputName string
}

// Result records the outcome of one folder's merge.
type Result struct {
	Folder     scanner.Folder
	OutputPath string
	Err        error
}

// Summary aggregates a whole run.
type Summary struct {
	Results   []Result
	Succeeded int
	Failed    int
}

// Total returns the number of folders processed.
func (s *Summary) Total() int {
	return len(s.Results)
}

func (s *Summary) record(result Result) {
	s.Results = append(s.Results, result)
	if result.Err != nil {
		s.Failed++
	} else {
		s.Succeeded++
	}
}
