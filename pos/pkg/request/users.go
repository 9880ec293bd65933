package request

type CreateUser struct {
	FullName string `validate:"required"                   json:"fullName"`
	Username string `validate:"required"                   json:"username"`
	Password string `validate:"required,min=4"             json:"password"`
	Role     string `validate:"required,oneof=ADMIN SELLER" json:"role"`
}
