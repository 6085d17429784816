package dto

// TransformRequest triggers the edit step of the Transform workflow.
type TransformRequest struct {
	Prompt string `json:"prompt"`
}

// RefineRequest triggers a refine pass on an already-produced result.
type RefineRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateRequest triggers the Generate workflow.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}
