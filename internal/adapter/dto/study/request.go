package study

// ProcessRequest holds the form fields sent alongside the audio upload
type ProcessRequest struct {
	Model string `form:"model" validate:"omitempty,oneof=fast balanced base small"`
}

// ExportRequest selects the report format and delivery
type ExportRequest struct {
	Format string `param:"format" validate:"required,oneof=pdf docx"`
	Link   bool   `query:"link"`
}

// ListRunsRequest pages through run history
type ListRunsRequest struct {
	Limit int  `query:"limit" validate:"omitempty,min=1,max=100"`
	All   bool `query:"all"`
}
