package dto

// SignupReq is the request body for the /signup endpoint. Gin's binding tags
// enforce the email format and minimum password length.
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
