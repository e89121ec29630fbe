package api

type ProgressRequest struct {
	Progress      *int    `json:"progress" validate:"required,min=0,max=100"`
	CurrentModule *string `json:"current_module,omitempty" validate:"omitempty,max=200"`
}
