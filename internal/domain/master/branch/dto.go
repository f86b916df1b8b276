package branch

// BranchResponse represents the response structure for a branch.
type BranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AllBranchesID is the sentinel branch id meaning "no branch filter".
const AllBranchesID = "all"

// Fallback returns the sentinel list served when the branch fetch fails, so
// the dashboard filter always has at least one entry.
func Fallback() []BranchResponse {
	return []BranchResponse{{ID: AllBranchesID, Name: "All Branches"}}
}
