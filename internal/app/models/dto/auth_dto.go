package dto

// RegisterRequest carries a new student registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ab123@campus.edu"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required" example:"John Doe"`
	RollNo   string `json:"rollNo" binding:"required" example:"ab123"`
	HostelID int64  `json:"hostelId" binding:"required" example:"1"`
	RoomNo   string `json:"roomNo" binding:"required" example:"502"`
	PhoneNo  string `json:"phoneNo" binding:"required" example:"9876543210"`
	BagCode  string `json:"bagCode" binding:"required" example:"BAG-0042"`
}

// LoginRequest carries login credentials; role selects the portal
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=student staff" example:"student"`
}

// RefreshTokenRequest carries a refresh token to redeem for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is returned on successful login or registration
type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn" example:"3600"`
	User         UserResponse `json:"user"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	RoleType string `json:"roleType" example:"STUDENT"`
	RollNo   string `json:"rollNo,omitempty"`
}
