package dto

// MessageResponse is the canonical body for error and status responses.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// TokenResponse is the body returned on successful authentication.
type TokenResponse struct {
	Token string `json:"token"`
}

// Pagination carries optional paging parameters on list endpoints.
type Pagination struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// Limit returns the effective page size.
func (p Pagination) Limit() int {
	if p.PageSize <= 0 {
		return 50
	}
	return p.PageSize
}

// Offset returns the row offset for the requested page.
func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}
