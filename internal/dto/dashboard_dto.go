package dto

type SeekerDashboard struct {
	Applications int64 `json:"applications"`
	Interviews   int64 `json:"interviews"`
	TestsTaken   int64 `json:"testsTaken"`
	TestsPassed  int64 `json:"testsPassed"`
}

type CompanyDashboard struct {
	Tests            int64 `json:"tests"`
	Interviews       int64 `json:"interviews"`
	PassedCandidates int64 `json:"passedCandidates"`
}
