package request

// CreateFranchiseRequest represents the create franchise payload
type CreateFranchiseRequest struct {
	Name          string  `json:"name" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	City          string  `json:"city" binding:"required"`
	Province      string  `json:"province" binding:"required"`
	Phone         string  `json:"phone" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	ContactPerson string  `json:"contact_person" binding:"required"`
	Website       *string `json:"website"`
	TesisCode     *string `json:"tesis_code"`
}

// UpdateFranchiseRequest represents the update franchise payload
type UpdateFranchiseRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Province      *string `json:"province"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	ContactPerson *string `json:"contact_person"`
	Website       *string `json:"website"`
	TesisCode     *string `json:"tesis_code"`
}
