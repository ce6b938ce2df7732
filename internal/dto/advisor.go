package dto

// AskAdvisorRequest carries the owner's free-text question.
type AskAdvisorRequest struct {
	Question string `json:"question" binding:"required"`
}

// AdvisorResponse carries the advisory text; on backend failure this is the
// fixed localized fallback, never empty.
type AdvisorResponse struct {
	Answer string `json:"answer"`
}
