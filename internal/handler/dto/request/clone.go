package request

// CloneAccountRequest carries the attributes of the account the clone is
// copied into.
type CloneAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
}
